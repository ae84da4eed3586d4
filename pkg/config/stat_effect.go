package config

import "fmt"

// 可被升级效果修改的玩家属性
const (
	StatSpeed           = "speed"           // 移动速度（像素/秒）
	StatAttackSpeed     = "attackSpeed"     // 攻击间隔（毫秒）
	StatMaxHealth       = "maxHealth"       // 最大生命值
	StatHeal            = "heal"            // 回复生命值（不超过最大生命值）
	StatProjectileCount = "projectileCount" // 每次射击的子弹数量
	StatDashCharge      = "dashCharge"      // 立即获得冲刺次数
)

var knownStats = map[string]bool{
	StatSpeed:           true,
	StatAttackSpeed:     true,
	StatMaxHealth:       true,
	StatHeal:            true,
	StatProjectileCount: true,
	StatDashCharge:      true,
}

// StatEffect 描述一次属性修改
// Multiply 为 0 表示不做乘法修改；先乘后加
type StatEffect struct {
	Stat     string  `yaml:"stat"`
	Add      float64 `yaml:"add"`
	Multiply float64 `yaml:"multiply"`
}

func validateEffects(owner string, effects []StatEffect) error {
	for i, e := range effects {
		if !knownStats[e.Stat] {
			return fmt.Errorf("%s: effect %d has unknown stat %q", owner, i, e.Stat)
		}
		if e.Multiply < 0 {
			return fmt.Errorf("%s: effect %d multiply cannot be negative, got %v", owner, i, e.Multiply)
		}
		if e.Add == 0 && e.Multiply == 0 {
			return fmt.Errorf("%s: effect %d on %s changes nothing", owner, i, e.Stat)
		}
	}
	return nil
}

// IsKnownStat 检查属性名是否受支持
func IsKnownStat(stat string) bool {
	return knownStats[stat]
}
