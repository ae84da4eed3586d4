//go:build !android

package utils

// EnsureStorageDir 准备存档子目录
// 桌面平台由 gdata 自行创建目录，这里什么也不做
func EnsureStorageDir(subdir string) error {
	return nil
}

// StoragePath 返回平台存档根目录；桌面平台交给 gdata 决定，返回空字符串
func StoragePath() string {
	return ""
}
