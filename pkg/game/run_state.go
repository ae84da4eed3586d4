package game

import (
	"fmt"
	"sort"
)

// Mode 游戏模式
type Mode string

const (
	ModeNormal   Mode = "normal"   // 普通模式：20 关通关
	ModeDungeon  Mode = "dungeon"  // 地牢模式：更大的波次，10 关通关
	ModeEndless  Mode = "endless"  // 无尽模式：无上限，每 20 关出现 Boss，记录最高分
	ModeTutorial Mode = "tutorial" // 教学模式：3 关，最后一关为教学 Boss
)

// Modes 返回所有模式（开始界面按此顺序展示）
func Modes() []Mode {
	return []Mode{ModeNormal, ModeDungeon, ModeEndless, ModeTutorial}
}

// Valid 检查模式是否合法
func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeDungeon, ModeEndless, ModeTutorial:
		return true
	}
	return false
}

// ParseMode 解析模式名称
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	return m, m.Valid()
}

// PlayerSnapshot 玩家状态快照（用于存档和 HUD）
type PlayerSnapshot struct {
	X, Y            float64
	Speed           float64
	MaxHealth       int
	Health          int
	AttackSpeed     float64 // 攻击间隔（毫秒）
	ProjectileCount int
	KillCount       int
	DashCharges     int
	DashMaxCharges  int
}

// SkillProgress 技能树进度
// 切片保持排序，保证相同进度序列化结果一致
type SkillProgress struct {
	Learned  []string          // 已学习的技能ID
	Unlocked []UnlockedUpgrade // 已解锁的升级项
}

// UnlockedUpgrade 已解锁的升级项
type UnlockedUpgrade struct {
	Skill   string
	Upgrade string
}

// normalize 排序并去掉空切片，使相同进度得到相同的值
func (p *SkillProgress) normalize() {
	if len(p.Learned) == 0 {
		p.Learned = nil
	} else {
		sort.Strings(p.Learned)
	}
	if len(p.Unlocked) == 0 {
		p.Unlocked = nil
	} else {
		sort.Slice(p.Unlocked, func(i, j int) bool {
			if p.Unlocked[i].Skill != p.Unlocked[j].Skill {
				return p.Unlocked[i].Skill < p.Unlocked[j].Skill
			}
			return p.Unlocked[i].Upgrade < p.Unlocked[j].Upgrade
		})
	}
}

// RunState 一局游戏的可恢复状态
type RunState struct {
	Level         int // 当前关卡，从 1 开始单调递增
	UpgradePoints int // 升级点，不为负
	Mode          Mode
	Zen           bool // 禅模式：多波合并结算
	ZenWave       int  // 禅模式当前批次内已清空的波次数
	Player        PlayerSnapshot
	Skills        SkillProgress
}

// NewRunState 创建新一局的初始状态
func NewRunState(mode Mode, zen bool, player PlayerSnapshot) *RunState {
	return &RunState{
		Level:  1,
		Mode:   mode,
		Zen:    zen,
		Player: player,
	}
}

// Validate 校验状态是否满足结构约束，失败时返回 ErrCorruptData
func (rs *RunState) Validate() error {
	fail := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrCorruptData, fmt.Sprintf(format, args...))
	}

	if rs.Level < 1 {
		return fail("level must be at least 1, got %d", rs.Level)
	}
	if rs.UpgradePoints < 0 {
		return fail("upgrade points cannot be negative, got %d", rs.UpgradePoints)
	}
	if !rs.Mode.Valid() {
		return fail("unknown mode %q", rs.Mode)
	}
	if rs.ZenWave < 0 || (!rs.Zen && rs.ZenWave != 0) {
		return fail("zen wave %d invalid (zen=%v)", rs.ZenWave, rs.Zen)
	}

	p := rs.Player
	if p.MaxHealth <= 0 {
		return fail("max health must be positive, got %d", p.MaxHealth)
	}
	if p.Health < 0 || p.Health > p.MaxHealth {
		return fail("health %d outside [0, %d]", p.Health, p.MaxHealth)
	}
	if p.Speed <= 0 || p.AttackSpeed <= 0 {
		return fail("speed and attack speed must be positive")
	}
	if p.ProjectileCount < 1 {
		return fail("projectile count must be at least 1, got %d", p.ProjectileCount)
	}
	if p.KillCount < 0 {
		return fail("kill count cannot be negative, got %d", p.KillCount)
	}
	if p.DashMaxCharges < 0 || p.DashCharges < 0 || p.DashCharges > p.DashMaxCharges {
		return fail("dash charges %d outside [0, %d]", p.DashCharges, p.DashMaxCharges)
	}
	return nil
}
