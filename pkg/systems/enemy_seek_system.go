package systems

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/utils"
)

// EnemySeekSystem 敌人向玩家直线追击
type EnemySeekSystem struct {
	em *ecs.EntityManager
}

// NewEnemySeekSystem 创建敌人追击系统
func NewEnemySeekSystem(em *ecs.EntityManager) *EnemySeekSystem {
	return &EnemySeekSystem{em: em}
}

// Update 移动所有敌人；玩家不存在或已死亡时敌人原地不动
func (s *EnemySeekSystem) Update(deltaTime float64) {
	playerID, ok := FindPlayer(s.em)
	if !ok {
		return
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, playerID); ok && health.CurrentHealth <= 0 {
		return
	}
	target, _ := ecs.GetComponent[*components.PositionComponent](s.em, playerID)

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		dx, dy, ok := utils.Normalize(target.X-pos.X, target.Y-pos.Y)
		if !ok {
			continue
		}
		step := enemy.Speed * deltaTime
		dist := utils.Length(target.X-pos.X, target.Y-pos.Y)
		if step > dist {
			step = dist
		}
		pos.X += dx * step
		pos.Y += dy * step
	}
}
