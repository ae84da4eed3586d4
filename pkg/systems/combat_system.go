package systems

import (
	"log"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/entities"
	"github.com/decker502/roguedash/pkg/utils"
)

// CombatSystem 玩家自动射击
//
// 每隔 AttackSpeed 毫秒瞄准最近的敌人射击；没有敌人时不射击也不重置冷却。
// ProjectileCount > 1 时在主弹道两侧按 ±SpreadAngle·i 成对散射。
type CombatSystem struct {
	em  *ecs.EntityManager
	cfg *config.BalanceConfig
}

// NewCombatSystem 创建射击系统
func NewCombatSystem(em *ecs.EntityManager, cfg *config.BalanceConfig) *CombatSystem {
	return &CombatSystem{em: em, cfg: cfg}
}

// Update 处理射击，返回本帧发射的子弹数
func (s *CombatSystem) Update(now float64) int {
	fired := 0
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if (now-player.LastShotAt)*1000 < player.AttackSpeed {
			continue
		}
		targetID, ok := NearestEnemy(s.em, pos.X, pos.Y)
		if !ok {
			continue
		}
		target, _ := ecs.GetComponent[*components.PositionComponent](s.em, targetID)

		player.LastShotAt = now
		fired += s.fire(pos.X, pos.Y, target.X-pos.X, target.Y-pos.Y, player.ProjectileCount)
	}
	return fired
}

func (s *CombatSystem) fire(x, y, dirX, dirY float64, count int) int {
	dx, dy, ok := utils.Normalize(dirX, dirY)
	if !ok {
		// 敌人与玩家重合时默认向右
		dx, dy = 1, 0
	}

	fired := 0
	spawn := func(vx, vy float64) {
		if _, err := entities.NewProjectileEntity(s.em, s.cfg, x, y, vx, vy); err != nil {
			log.Printf("[CombatSystem] Failed to spawn projectile: %v", err)
			return
		}
		fired++
	}

	spawn(dx, dy)
	for i := 1; i <= (count-1)/2; i++ {
		angle := s.cfg.Projectile.SpreadAngle * float64(i)
		spawn(utils.Rotate(dx, dy, angle))
		spawn(utils.Rotate(dx, dy, -angle))
	}
	return fired
}

// NearestEnemy 返回距离 (x, y) 最近的存活敌人
// 距离相同时选择 ID 最小者
func NearestEnemy(em *ecs.EntityManager, x, y float64) (ecs.EntityID, bool) {
	var (
		best     ecs.EntityID
		bestDist float64
		found    bool
	)
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		d := utils.DistanceSquared(x, y, pos.X, pos.Y)
		if !found || d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}
