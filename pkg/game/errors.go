package game

import (
	"errors"
	"fmt"
)

// 核心层错误分类
//
// 处理策略：
//   - ErrNotFound / ErrCorruptData：持久化读取失败，调用方降级为"重新开始"
//   - ErrInsufficientPoints / ErrLocked：经济操作被拒绝，状态不变
//   - ErrInvalidTransition：当前状态不接受该操作，忽略即可
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrCorruptData        = errors.New("corrupt data")
	ErrInsufficientPoints = errors.New("insufficient upgrade points")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrLocked             = errors.New("locked")
	ErrInvalidName        = errors.New("invalid account name")
)

// ErrCorruptSave 存档结构与预期不符，errors.Is(err, ErrCorruptData) 同样成立
var ErrCorruptSave = fmt.Errorf("corrupt save: %w", ErrCorruptData)
