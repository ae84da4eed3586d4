package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
)

// EnemyStats 敌人在某一关卡的数值
type EnemyStats struct {
	Health int
	Speed  float64
	Size   float64
	Damage int
}

// ComputeEnemyStats 推导敌人数值
//
// 规则：
//   - 基础血量每 HealthDoublingLevels 关翻倍：base × 2^((level-1)/5)（整除）
//   - 无尽模式普通敌人速度每关提升 EndlessSpeedStep
//   - Boss：血量 ×20，速度为基础速度 ×0.8，体型 ×2
//   - 教学 Boss：固定血量，速度和体型同 Boss
func ComputeEnemyStats(cfg *config.BalanceConfig, kind components.EnemyKind, level int, speedScaling bool) EnemyStats {
	if level < 1 {
		level = 1
	}
	e := cfg.Enemy

	doublings := 0
	if e.HealthDoublingLevels > 0 {
		doublings = (level - 1) / e.HealthDoublingLevels
	}
	stats := EnemyStats{
		Health: e.Health << uint(doublings),
		Speed:  e.Speed,
		Size:   e.Size,
		Damage: e.Damage,
	}

	switch kind {
	case components.EnemyBoss:
		stats.Health = int(float64(stats.Health) * cfg.Boss.HealthMultiplier)
		stats.Speed = e.Speed * cfg.Boss.SpeedMultiplier
		stats.Size = e.Size * cfg.Boss.SizeMultiplier
	case components.EnemyTutorialBoss:
		stats.Health = cfg.Boss.TutorialHealth
		stats.Speed = e.Speed * cfg.Boss.SpeedMultiplier
		stats.Size = e.Size * cfg.Boss.SizeMultiplier
	default:
		if speedScaling {
			stats.Speed *= 1 + float64(level-1)*e.EndlessSpeedStep
		}
	}
	return stats
}

// SpawnPosition 在屏幕外 SpawnMargin 处随机选择出生点
// 先随机选一条边，再沿该边（含两端外延）均匀取值
func SpawnPosition(rng *rand.Rand, cfg *config.BalanceConfig) (float64, float64) {
	m := cfg.Enemy.SpawnMargin
	w, h := float64(cfg.Screen.Width), float64(cfg.Screen.Height)

	switch rng.Intn(4) {
	case 0: // top
		return -m + rng.Float64()*(w+2*m), -m
	case 1: // bottom
		return -m + rng.Float64()*(w+2*m), h + m
	case 2: // left
		return -m, -m + rng.Float64()*(h+2*m)
	default: // right
		return w + m, -m + rng.Float64()*(h+2*m)
	}
}

// NewEnemyEntity 创建敌人实体
func NewEnemyEntity(em *ecs.EntityManager, kind components.EnemyKind, stats EnemyStats, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stats.Health <= 0 {
		return 0, fmt.Errorf("enemy %s must have positive health, got %d", kind, stats.Health)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: stats.Size, Height: stats.Size})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Kind:   kind,
		Speed:  stats.Speed,
		Damage: stats.Damage,
	})
	return id, nil
}
