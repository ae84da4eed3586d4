package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/entities"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 根据模式规则决定一波的规模和敌人种类
//   - 在屏幕外边缘随机生成敌人
type WaveSpawnSystem struct {
	em  *ecs.EntityManager
	cfg *config.BalanceConfig
	rng *rand.Rand
}

// NewWaveSpawnSystem 创建波次生成系统
func NewWaveSpawnSystem(em *ecs.EntityManager, cfg *config.BalanceConfig, rng *rand.Rand) *WaveSpawnSystem {
	return &WaveSpawnSystem{em: em, cfg: cfg, rng: rng}
}

// WavePlan 一波敌人的组成
type WavePlan struct {
	Kind  components.EnemyKind
	Count int
}

// PlanWave 计算某关的波次组成
//
//   - 无尽模式每 BossEvery 关只出现一个 Boss
//   - 教学模式最后一关只出现一个教学 Boss
//   - 其余为 (WaveBase + WavePerLevel·level) × WaveScale 个普通敌人
func PlanWave(mode config.ModeConfig, level int) WavePlan {
	if mode.BossEvery > 0 && level%mode.BossEvery == 0 {
		return WavePlan{Kind: components.EnemyBoss, Count: 1}
	}
	if mode.TutorialBoss && mode.LevelCap > 0 && level == mode.LevelCap {
		return WavePlan{Kind: components.EnemyTutorialBoss, Count: 1}
	}

	count := int(float64(mode.WaveBase+mode.WavePerLevel*level) * mode.WaveScale)
	if count < 1 {
		count = 1
	}
	return WavePlan{Kind: components.EnemyNormal, Count: count}
}

// SpawnWave 生成一波敌人，返回生成数量
func (s *WaveSpawnSystem) SpawnWave(mode config.ModeConfig, level int) int {
	plan := PlanWave(mode, level)
	stats := entities.ComputeEnemyStats(s.cfg, plan.Kind, level, mode.SpeedScaling)

	spawned := 0
	for i := 0; i < plan.Count; i++ {
		x, y := entities.SpawnPosition(s.rng, s.cfg)
		if _, err := entities.NewEnemyEntity(s.em, plan.Kind, stats, x, y); err != nil {
			log.Printf("[WaveSpawnSystem] Failed to spawn %s: %v", plan.Kind, err)
			continue
		}
		spawned++
	}

	log.Printf("[WaveSpawnSystem] Level %d: spawned %d x %s (health=%d, speed=%.1f)",
		level, spawned, plan.Kind, stats.Health, stats.Speed)
	return spawned
}
