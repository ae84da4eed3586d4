package game

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"log"
)

// RunSerializer 存档序列化器
//
// 使用 gob 二进制格式将 RunState 写入存储，读取时校验版本和结构。
type RunSerializer struct {
	storage Storage
}

// NewRunSerializer 创建存档序列化器
func NewRunSerializer(storage Storage) *RunSerializer {
	return &RunSerializer{storage: storage}
}

// EncodeRunState 将 RunState 编码为存档字节
func EncodeRunState(rs *RunState) ([]byte, error) {
	if rs == nil {
		return nil, fmt.Errorf("RunState is nil")
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to save invalid run: %w", err)
	}

	data := RunSaveData{Version: RunSaveVersion, Run: *rs}
	data.Run.Skills.Learned = append([]string(nil), rs.Skills.Learned...)
	data.Run.Skills.Unlocked = append([]UnlockedUpgrade(nil), rs.Skills.Unlocked...)
	data.Run.Skills.normalize()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&data); err != nil {
		return nil, fmt.Errorf("failed to encode save data: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeRunState 解码存档字节，任何结构问题都返回 ErrCorruptSave
func DecodeRunState(raw []byte) (*RunState, error) {
	var data RunSaveData
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode save data: %v", ErrCorruptSave, err)
	}
	if data.Version != RunSaveVersion {
		return nil, fmt.Errorf("%w: save version mismatch: got %d, expected %d",
			ErrCorruptSave, data.Version, RunSaveVersion)
	}
	if err := data.Run.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}

	rs := data.Run
	rs.Skills.normalize()
	return &rs, nil
}

// Save 保存 RunState，覆盖已有存档
func (s *RunSerializer) Save(ref string, rs *RunState) error {
	if ref == "" {
		return fmt.Errorf("%w: empty save reference", ErrNotFound)
	}
	raw, err := EncodeRunState(rs)
	if err != nil {
		return err
	}
	if err := s.storage.Save(ref, raw); err != nil {
		return err
	}

	log.Printf("[RunSerializer] Saved run to %s: Mode=%s, Level=%d, Points=%d, Health=%d/%d",
		ref, rs.Mode, rs.Level, rs.UpgradePoints, rs.Player.Health, rs.Player.MaxHealth)
	return nil
}

// Load 读取存档
//
// 引用为空或存档不存在时返回 ErrNotFound；内容损坏时返回 ErrCorruptSave。
func (s *RunSerializer) Load(ref string) (*RunState, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty save reference", ErrNotFound)
	}
	raw, err := s.storage.Load(ref)
	if err != nil {
		return nil, err
	}

	rs, err := DecodeRunState(raw)
	if err != nil {
		log.Printf("[RunSerializer] Save %s is unusable: %v", ref, err)
		return nil, err
	}

	log.Printf("[RunSerializer] Loaded run from %s: Mode=%s, Level=%d", ref, rs.Mode, rs.Level)
	return rs, nil
}

// Exists 检查存档是否存在
func (s *RunSerializer) Exists(ref string) bool {
	return ref != "" && s.storage.Exists(ref)
}

// HasValidSave 检查存档是否存在且可读取
//
// 损坏的存档视为不存在。
func (s *RunSerializer) HasValidSave(ref string) bool {
	if !s.Exists(ref) {
		return false
	}
	_, err := s.Load(ref)
	return err == nil
}

// Delete 删除存档
func (s *RunSerializer) Delete(ref string) error {
	if ref == "" {
		return nil
	}
	if err := s.storage.Delete(ref); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	log.Printf("[RunSerializer] Deleted save %s", ref)
	return nil
}
