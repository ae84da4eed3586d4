//go:build !mobile

// 桌面构建时 mobile 包只保留导出符号，游戏入口在根目录 main.go
package mobile

// Dummy 与移动端构建保持相同的导出集合
func Dummy() {}
