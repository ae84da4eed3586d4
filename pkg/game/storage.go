package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// Storage 持久化后端
//
// 账户表和存档都通过 key 读写整块数据，key 由调用方决定
// （例如 "accounts.yaml"、"save_alice.sav"）。
type Storage interface {
	// Exists 检查 key 是否存在
	Exists(key string) bool
	// Load 读取数据，不存在时返回的错误满足 errors.Is(err, ErrNotFound)
	Load(key string) ([]byte, error)
	// Save 覆盖写入数据
	Save(key string, data []byte) error
	// Delete 删除数据，不存在时不报错
	Delete(key string) error
}

// DirStorage 以目录中的普通文件作为存储（桌面端和测试使用）
type DirStorage struct {
	dir string
}

// NewDirStorage 创建目录存储，目录不存在时自动创建
func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return &DirStorage{dir: dir}, nil
}

// Dir 返回存储目录
func (s *DirStorage) Dir() string {
	return s.dir
}

func (s *DirStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// Exists 检查文件是否存在
func (s *DirStorage) Exists(key string) bool {
	p, err := s.path(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Load 读取文件内容
func (s *DirStorage) Load(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// Save 写入文件
func (s *DirStorage) Save(key string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}

// Delete 删除文件
func (s *DirStorage) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", p, err)
	}
	return nil
}

// GdataStorage 基于 gdata 的跨平台存储（移动端、浏览器）
// 所有 key 存放在同一个 gdata object 下
type GdataStorage struct {
	manager *gdata.Manager
	object  string
}

var gdataKeyReplacer = strings.NewReplacer(".", "_", " ", "_")

// prop 将 key 转换为 gdata 属性名（只保留字母、数字和下划线）
func (s *GdataStorage) prop(key string) string {
	return gdataKeyReplacer.Replace(key)
}

// NewGdataStorage 创建 gdata 存储
func NewGdataStorage(manager *gdata.Manager, object string) *GdataStorage {
	return &GdataStorage{manager: manager, object: object}
}

// Exists 检查属性是否存在
func (s *GdataStorage) Exists(key string) bool {
	return s.manager.ObjectPropExists(s.object, s.prop(key))
}

// Load 读取属性
func (s *GdataStorage) Load(key string) ([]byte, error) {
	if !s.manager.ObjectPropExists(s.object, s.prop(key)) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	data, err := s.manager.LoadObjectProp(s.object, s.prop(key))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s: %w", s.object, key, err)
	}
	return data, nil
}

// Save 写入属性
func (s *GdataStorage) Save(key string, data []byte) error {
	if err := s.manager.SaveObjectProp(s.object, s.prop(key), data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", s.object, key, err)
	}
	return nil
}

// Delete 删除属性
func (s *GdataStorage) Delete(key string) error {
	if !s.manager.ObjectPropExists(s.object, s.prop(key)) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(s.object, s.prop(key)); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", s.object, key, err)
	}
	return nil
}

// MemStorage 内存存储（无法持久化时的降级方案，也用于测试）
type MemStorage struct {
	data map[string][]byte
}

// NewMemStorage 创建内存存储
func NewMemStorage() *MemStorage {
	return &MemStorage{data: make(map[string][]byte)}
}

// Exists 检查 key 是否存在
func (s *MemStorage) Exists(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Load 读取数据副本
func (s *MemStorage) Load(key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), data...), nil
}

// Save 保存数据副本
func (s *MemStorage) Save(key string, data []byte) error {
	s.data[key] = append([]byte(nil), data...)
	return nil
}

// Delete 删除数据
func (s *MemStorage) Delete(key string) error {
	delete(s.data, key)
	return nil
}
