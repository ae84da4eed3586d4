//go:build android

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在应用私有目录下创建 subdir 并确认可写
// gdata 在 Android 上使用 /data/data/{package}/，但不会预先创建子目录
func EnsureStorageDir(subdir string) error {
	root := StoragePath()
	if root == "" {
		return errors.New("cannot detect android package name")
	}

	dir := filepath.Join(root, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StoragePath 返回 /data/data/{package}，包名读取失败时返回空字符串
func StoragePath() string {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一段即包名
	pkg, _, _ := strings.Cut(string(cmdline), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
