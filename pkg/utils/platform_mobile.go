//go:build mobile

package utils

// IsMobile 移动端构建始终为 true，输入走触屏虚拟摇杆
func IsMobile() bool {
	return true
}
