package config

import (
	"fmt"

	"github.com/decker502/roguedash/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// BalanceConfigPath 数值配置文件的嵌入路径
const BalanceConfigPath = "data/balance.yaml"

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DashConfig 冲刺技能参数
type DashConfig struct {
	MaxCharges     int     `yaml:"maxCharges"`     // 最大充能次数
	InitialCharges int     `yaml:"initialCharges"` // 开局充能次数
	Cooldown       float64 `yaml:"cooldown"`       // 单次充能恢复时间（秒）
	Distance       float64 `yaml:"distance"`       // 位移距离（像素）
}

// PlayerConfig 玩家初始属性
type PlayerConfig struct {
	Size            float64    `yaml:"size"`
	Speed           float64    `yaml:"speed"`
	MaxHealth       int        `yaml:"maxHealth"`
	AttackSpeed     float64    `yaml:"attackSpeed"` // 攻击间隔（毫秒）
	ProjectileCount int        `yaml:"projectileCount"`
	Dash            DashConfig `yaml:"dash"`
}

// EnemyConfig 普通敌人基础属性
type EnemyConfig struct {
	Size                 float64 `yaml:"size"`
	Speed                float64 `yaml:"speed"`
	Health               int     `yaml:"health"`
	Damage               int     `yaml:"damage"`
	SpawnMargin          float64 `yaml:"spawnMargin"`          // 生成点距屏幕边缘的距离
	HealthDoublingLevels int     `yaml:"healthDoublingLevels"` // 每隔多少关血量翻倍
	EndlessSpeedStep     float64 `yaml:"endlessSpeedStep"`     // 无尽模式每关速度增幅
}

// BossConfig Boss 相对普通敌人的倍率
type BossConfig struct {
	HealthMultiplier float64 `yaml:"healthMultiplier"`
	SpeedMultiplier  float64 `yaml:"speedMultiplier"`
	SizeMultiplier   float64 `yaml:"sizeMultiplier"`
	TutorialHealth   int     `yaml:"tutorialHealth"` // 教学 Boss 固定血量
}

// ProjectileConfig 子弹属性
type ProjectileConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	Damage      int     `yaml:"damage"`
	SpreadAngle float64 `yaml:"spreadAngle"` // 散射子弹之间的角度（度）
}

// ProgressionConfig 关卡推进与奖励
type ProgressionConfig struct {
	KillsPerPoint              int     `yaml:"killsPerPoint"`
	WaveClearHealthBonus       int     `yaml:"waveClearHealthBonus"`
	ZenBatch                   int     `yaml:"zenBatch"` // 禅模式一次结算的波数
	DashBloodDamage            int     `yaml:"dashBloodDamage"`
	DashHegemonInvulnerability float64 `yaml:"dashHegemonInvulnerability"`
	DashBulwarkInvulnerability float64 `yaml:"dashBulwarkInvulnerability"`
}

// ModeConfig 单个游戏模式的规则
type ModeConfig struct {
	LevelCap     int     `yaml:"levelCap"` // 0 表示无上限
	WaveBase     int     `yaml:"waveBase"`
	WavePerLevel int     `yaml:"wavePerLevel"`
	WaveScale    float64 `yaml:"waveScale"`
	BossEvery    int     `yaml:"bossEvery"`    // 0 表示没有 Boss 波
	SpeedScaling bool    `yaml:"speedScaling"` // 敌人速度是否随关卡提升
	TutorialBoss bool    `yaml:"tutorialBoss"` // 最后一关是否出现教学 Boss
}

// BalanceConfig 游戏数值配置文件结构
type BalanceConfig struct {
	Screen      ScreenConfig          `yaml:"screen"`
	Player      PlayerConfig          `yaml:"player"`
	Enemy       EnemyConfig           `yaml:"enemy"`
	Boss        BossConfig            `yaml:"boss"`
	Projectile  ProjectileConfig      `yaml:"projectile"`
	Progression ProgressionConfig     `yaml:"progression"`
	Modes       map[string]ModeConfig `yaml:"modes"`
}

// LoadBalanceConfig 从嵌入文件加载数值配置
func LoadBalanceConfig(path string) (*BalanceConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance config %s: %w", path, err)
	}

	cfg, err := ParseBalanceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid balance config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseBalanceConfig 解析并校验数值配置
func ParseBalanceConfig(data []byte) (*BalanceConfig, error) {
	var cfg BalanceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	if err := validateBalanceConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateBalanceConfig 验证数值配置的完整性和合法性
func validateBalanceConfig(cfg *BalanceConfig) error {
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}

	p := cfg.Player
	if p.Size <= 0 || p.Speed <= 0 || p.MaxHealth <= 0 || p.AttackSpeed <= 0 {
		return fmt.Errorf("player size, speed, maxHealth and attackSpeed must be positive")
	}
	if p.ProjectileCount < 1 {
		return fmt.Errorf("player projectileCount must be at least 1, got %d", p.ProjectileCount)
	}
	if p.Dash.MaxCharges < 1 {
		return fmt.Errorf("dash maxCharges must be at least 1, got %d", p.Dash.MaxCharges)
	}
	if p.Dash.InitialCharges < 0 || p.Dash.InitialCharges > p.Dash.MaxCharges {
		return fmt.Errorf("dash initialCharges must be within [0, %d], got %d", p.Dash.MaxCharges, p.Dash.InitialCharges)
	}
	if p.Dash.Cooldown <= 0 {
		return fmt.Errorf("dash cooldown must be positive, got %v", p.Dash.Cooldown)
	}

	e := cfg.Enemy
	if e.Size <= 0 || e.Speed <= 0 || e.Health <= 0 || e.Damage < 0 {
		return fmt.Errorf("enemy size, speed and health must be positive, damage non-negative")
	}
	if e.HealthDoublingLevels < 1 {
		return fmt.Errorf("enemy healthDoublingLevels must be at least 1, got %d", e.HealthDoublingLevels)
	}

	if cfg.Boss.HealthMultiplier <= 0 || cfg.Boss.SpeedMultiplier <= 0 || cfg.Boss.SizeMultiplier <= 0 {
		return fmt.Errorf("boss multipliers must be positive")
	}
	if cfg.Boss.TutorialHealth <= 0 {
		return fmt.Errorf("boss tutorialHealth must be positive, got %d", cfg.Boss.TutorialHealth)
	}

	if cfg.Projectile.Size <= 0 || cfg.Projectile.Speed <= 0 || cfg.Projectile.Damage <= 0 {
		return fmt.Errorf("projectile size, speed and damage must be positive")
	}

	if cfg.Progression.KillsPerPoint < 1 {
		return fmt.Errorf("progression killsPerPoint must be at least 1, got %d", cfg.Progression.KillsPerPoint)
	}
	if cfg.Progression.ZenBatch < 1 {
		return fmt.Errorf("progression zenBatch must be at least 1, got %d", cfg.Progression.ZenBatch)
	}

	if len(cfg.Modes) == 0 {
		return fmt.Errorf("at least one mode is required")
	}
	for name, m := range cfg.Modes {
		if m.LevelCap < 0 {
			return fmt.Errorf("mode %s: levelCap cannot be negative, got %d", name, m.LevelCap)
		}
		if m.WaveBase < 0 || m.WavePerLevel < 0 || m.WaveBase+m.WavePerLevel == 0 {
			return fmt.Errorf("mode %s: waves must contain at least one enemy", name)
		}
		if m.WaveScale <= 0 {
			return fmt.Errorf("mode %s: waveScale must be positive, got %v", name, m.WaveScale)
		}
		if m.BossEvery < 0 {
			return fmt.Errorf("mode %s: bossEvery cannot be negative, got %d", name, m.BossEvery)
		}
	}

	return nil
}

// GetMode 获取指定模式的规则
func (c *BalanceConfig) GetMode(name string) (ModeConfig, bool) {
	m, ok := c.Modes[name]
	return m, ok
}
