package systems

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
)

// ProjectileSystem 移动子弹，飞出屏幕的子弹被删除
type ProjectileSystem struct {
	em  *ecs.EntityManager
	cfg *config.BalanceConfig
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, cfg *config.BalanceConfig) *ProjectileSystem {
	return &ProjectileSystem{em: em, cfg: cfg}
}

// Update 移动子弹并清理屏幕外的子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	w, h := float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)

	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		half := s.cfg.Projectile.Size / 2
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			half = col.Width / 2
		}
		if pos.X+half < 0 || pos.X-half > w || pos.Y+half < 0 || pos.Y-half > h {
			s.em.DestroyEntity(id)
		}
	}
}
