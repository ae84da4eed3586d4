package entities

import (
	"fmt"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/utils"
)

// NewProjectileEntity 创建玩家子弹
//
// 参数：
//   - x, y: 发射位置（玩家中心）
//   - dirX, dirY: 飞行方向，内部会归一化
func NewProjectileEntity(em *ecs.EntityManager, cfg *config.BalanceConfig, x, y, dirX, dirY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	nx, ny, ok := utils.Normalize(dirX, dirY)
	if !ok {
		return 0, fmt.Errorf("projectile direction cannot be zero")
	}

	p := cfg.Projectile
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: nx * p.Speed, VY: ny * p.Speed})
	em.AddComponent(id, &components.CollisionComponent{Width: p.Size, Height: p.Size})
	em.AddComponent(id, &components.ProjectileComponent{Damage: p.Damage})
	return id, nil
}
