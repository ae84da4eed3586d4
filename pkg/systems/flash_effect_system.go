package systems

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
)

// HitFlashDuration 受击闪白持续时间（秒）
const HitFlashDuration = 0.12

// FlashEffectSystem 管理受击闪白的生命周期
type FlashEffectSystem struct {
	em *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪白效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{em: em}
}

// Update 推进所有闪白效果，结束的效果被移除
func (s *FlashEffectSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.em) {
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.em, id)
		flash.Elapsed += deltaTime
		if flash.Elapsed >= flash.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.em, id)
		}
	}
}

// startFlash 开始（或重新开始）受击闪白
func startFlash(em *ecs.EntityManager, id ecs.EntityID) {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id); ok {
		flash.Elapsed = 0
		return
	}
	em.AddComponent(id, &components.FlashEffectComponent{Duration: HitFlashDuration})
}
