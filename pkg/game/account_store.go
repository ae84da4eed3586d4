package game

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AccountsKey 账户表在存储中的 key
const AccountsKey = "accounts.yaml"

// maxAccountNameLength 账户名最大长度
const maxAccountNameLength = 20

var accountNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// Account 本地账户记录
type Account struct {
	ID        int    `yaml:"id"`        // 顺序分配，从 1 开始
	Highscore int    `yaml:"highscore"` // 无尽模式到达的最高关卡
	SaveFile  string `yaml:"saveFile"`  // 存档引用
}

// AccountStore 账户表
//
// 职责：
//   - 账户的创建、查询和选择
//   - 最高分更新
//   - 每次修改后立即写回存储
//
// 账户只增不删，名称不可修改。
type AccountStore struct {
	storage  Storage
	accounts map[string]Account
	current  string
}

// NewAccountStore 从存储加载账户表
//
// 账户表缺失或无法解析时返回空表（记录日志，不视为错误）。
func NewAccountStore(storage Storage) *AccountStore {
	s := &AccountStore{
		storage:  storage,
		accounts: make(map[string]Account),
	}

	if err := s.load(); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Printf("[AccountStore] No account table yet, starting empty")
		} else {
			log.Printf("[AccountStore] Warning: %v (starting with empty account table)", err)
		}
	}
	return s
}

func (s *AccountStore) load() error {
	data, err := s.storage.Load(AccountsKey)
	if err != nil {
		return err
	}

	var accounts map[string]Account
	if err := yaml.Unmarshal(data, &accounts); err != nil {
		return fmt.Errorf("%w: failed to parse account table: %v", ErrCorruptData, err)
	}

	for name, acc := range accounts {
		if ValidateAccountName(name) != nil || acc.ID < 1 || acc.Highscore < 0 {
			return fmt.Errorf("%w: invalid account record %q", ErrCorruptData, name)
		}
	}

	if accounts != nil {
		s.accounts = accounts
	}
	log.Printf("[AccountStore] Loaded %d accounts", len(s.accounts))
	return nil
}

// Persist 将整张账户表写入存储
func (s *AccountStore) Persist() error {
	data, err := yaml.Marshal(s.accounts)
	if err != nil {
		return fmt.Errorf("failed to marshal account table: %w", err)
	}
	if err := s.storage.Save(AccountsKey, data); err != nil {
		return fmt.Errorf("failed to persist account table: %w", err)
	}
	return nil
}

// ValidateAccountName 验证账户名
//
// 规则：
//   - 不能为空或全为空格
//   - 只能包含字母、数字、空格
//   - 长度限制 1-20 字符
func ValidateAccountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if len(name) > maxAccountNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidName, maxAccountNameLength)
	}
	if !accountNamePattern.MatchString(name) {
		return fmt.Errorf("%w: only letters, digits and spaces are allowed", ErrInvalidName)
	}
	return nil
}

// SaveFileFor 返回账户名对应的存档引用
func SaveFileFor(name string) string {
	return "save_" + name + ".sav"
}

// Create 创建账户并立即持久化
//
// 名称已存在时返回 ErrAlreadyExists，账户表不变。
func (s *AccountStore) Create(name string) error {
	if err := ValidateAccountName(name); err != nil {
		return err
	}
	if _, ok := s.accounts[name]; ok {
		return fmt.Errorf("%w: account %q", ErrAlreadyExists, name)
	}

	s.accounts[name] = Account{
		ID:       len(s.accounts) + 1,
		SaveFile: SaveFileFor(name),
	}
	if err := s.Persist(); err != nil {
		delete(s.accounts, name)
		return err
	}

	log.Printf("[AccountStore] Created account %q (id=%d)", name, s.accounts[name].ID)
	return nil
}

// Get 查询账户
func (s *AccountStore) Get(name string) (Account, bool) {
	acc, ok := s.accounts[name]
	return acc, ok
}

// Select 设置当前账户
func (s *AccountStore) Select(name string) error {
	if _, ok := s.accounts[name]; !ok {
		return fmt.Errorf("%w: account %q", ErrNotFound, name)
	}
	s.current = name
	return nil
}

// Current 返回当前账户
func (s *AccountStore) Current() (string, Account, bool) {
	if s.current == "" {
		return "", Account{}, false
	}
	acc, ok := s.accounts[s.current]
	return s.current, acc, ok
}

// UpdateHighscore 当 level 高于记录时更新最高分并持久化
//
// 返回是否发生了更新。
func (s *AccountStore) UpdateHighscore(name string, level int) (bool, error) {
	acc, ok := s.accounts[name]
	if !ok {
		return false, fmt.Errorf("%w: account %q", ErrNotFound, name)
	}
	if level <= acc.Highscore {
		return false, nil
	}

	prev := acc.Highscore
	acc.Highscore = level
	s.accounts[name] = acc
	if err := s.Persist(); err != nil {
		return true, err
	}

	log.Printf("[AccountStore] Highscore of %q raised %d -> %d", name, prev, level)
	return true, nil
}

// Names 返回按 ID 排序的账户名
func (s *AccountStore) Names() []string {
	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.accounts[names[i]].ID < s.accounts[names[j]].ID
	})
	return names
}

// Len 返回账户数量
func (s *AccountStore) Len() int {
	return len(s.accounts)
}
