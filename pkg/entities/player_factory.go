package entities

import (
	"fmt"
	"log"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/game"
)

// DefaultPlayerSnapshot 新一局开始时的玩家属性（屏幕中心，满血）
// 初始冲刺充能不足上限，缺失的充能从 0 时刻开始恢复
func DefaultPlayerSnapshot(cfg *config.BalanceConfig) game.PlayerSnapshot {
	return game.PlayerSnapshot{
		X:               float64(cfg.Screen.Width) / 2,
		Y:               float64(cfg.Screen.Height) / 2,
		Speed:           cfg.Player.Speed,
		MaxHealth:       cfg.Player.MaxHealth,
		Health:          cfg.Player.MaxHealth,
		AttackSpeed:     cfg.Player.AttackSpeed,
		ProjectileCount: cfg.Player.ProjectileCount,
		DashCharges:     cfg.Player.Dash.InitialCharges,
		DashMaxCharges:  cfg.Player.Dash.MaxCharges,
	}
}

// NewPlayerEntity 根据快照创建玩家实体
//
// 快照中缺失的冲刺充能各自从 now 开始计时恢复。
//
// 参数：
//   - em: 实体管理器
//   - cfg: 数值配置（体型、冲刺冷却和距离）
//   - snap: 玩家属性快照
//   - now: 当前模拟时间（秒）
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.BalanceConfig, snap game.PlayerSnapshot, now float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("balance config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: snap.X, Y: snap.Y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Player.Size,
		Height: cfg.Player.Size,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: snap.Health,
		MaxHealth:     snap.MaxHealth,
	})
	em.AddComponent(id, &components.PlayerComponent{
		Speed:           snap.Speed,
		AttackSpeed:     snap.AttackSpeed,
		ProjectileCount: snap.ProjectileCount,
		KillCount:       snap.KillCount,
		LastShotAt:      now,
	})

	dash := &components.DashComponent{
		MaxCharges: snap.DashMaxCharges,
		Charges:    snap.DashCharges,
		Cooldown:   cfg.Player.Dash.Cooldown,
		Distance:   cfg.Player.Dash.Distance,
	}
	for i := dash.Charges; i < dash.MaxCharges; i++ {
		dash.RechargeAt = append(dash.RechargeAt, now+dash.Cooldown)
	}
	em.AddComponent(id, dash)

	log.Printf("[PlayerFactory] Created player %d at (%.0f, %.0f): Health=%d/%d, Dash=%d/%d",
		id, snap.X, snap.Y, snap.Health, snap.MaxHealth, snap.DashCharges, snap.DashMaxCharges)
	return id, nil
}

// SnapshotPlayer 从玩家实体读取属性快照
func SnapshotPlayer(em *ecs.EntityManager, id ecs.EntityID) (game.PlayerSnapshot, bool) {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](em, id)
	health, ok2 := ecs.GetComponent[*components.HealthComponent](em, id)
	player, ok3 := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok1 || !ok2 || !ok3 {
		return game.PlayerSnapshot{}, false
	}

	snap := game.PlayerSnapshot{
		X:               pos.X,
		Y:               pos.Y,
		Speed:           player.Speed,
		MaxHealth:       health.MaxHealth,
		Health:          health.CurrentHealth,
		AttackSpeed:     player.AttackSpeed,
		ProjectileCount: player.ProjectileCount,
		KillCount:       player.KillCount,
	}
	if dash, ok := ecs.GetComponent[*components.DashComponent](em, id); ok {
		snap.DashCharges = dash.Charges
		snap.DashMaxCharges = dash.MaxCharges
	}
	return snap, true
}
