package entities

import (
	"errors"
	"fmt"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
)

// ErrNoEffect 属性修改不会带来任何变化（例如冲刺充能已满）
var ErrNoEffect = errors.New("effect would not change anything")

// minAttackInterval 攻击间隔下限（毫秒）
const minAttackInterval = 50.0

// ApplyStatEffects 将一组属性修改应用到玩家
//
// 先检查全部修改是否可用，再统一生效；任意一项不可用时不修改任何属性。
// 数值修改规则：先乘 Multiply（0 表示不乘），再加 Add。
func ApplyStatEffects(em *ecs.EntityManager, playerID ecs.EntityID, effects []config.StatEffect) error {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if !ok {
		return fmt.Errorf("entity %d is not a player", playerID)
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, playerID)
	if !ok {
		return fmt.Errorf("player %d has no health", playerID)
	}
	dash, _ := ecs.GetComponent[*components.DashComponent](em, playerID)

	for _, e := range effects {
		if !config.IsKnownStat(e.Stat) {
			return fmt.Errorf("unknown stat %q", e.Stat)
		}
		if e.Stat == config.StatDashCharge {
			if dash == nil {
				return fmt.Errorf("%w: player %d cannot dash", ErrNoEffect, playerID)
			}
			if dash.Charges >= dash.MaxCharges {
				return fmt.Errorf("%w: dash charges already full", ErrNoEffect)
			}
		}
	}

	for _, e := range effects {
		switch e.Stat {
		case config.StatSpeed:
			player.Speed = modify(player.Speed, e)
		case config.StatAttackSpeed:
			player.AttackSpeed = modify(player.AttackSpeed, e)
			if player.AttackSpeed < minAttackInterval {
				player.AttackSpeed = minAttackInterval
			}
		case config.StatProjectileCount:
			player.ProjectileCount = int(modify(float64(player.ProjectileCount), e))
			if player.ProjectileCount < 1 {
				player.ProjectileCount = 1
			}
		case config.StatMaxHealth:
			health.MaxHealth = int(modify(float64(health.MaxHealth), e))
			if health.MaxHealth < 1 {
				health.MaxHealth = 1
			}
			if health.CurrentHealth > health.MaxHealth {
				health.CurrentHealth = health.MaxHealth
			}
		case config.StatHeal:
			health.CurrentHealth = int(modify(float64(health.CurrentHealth), e))
			if health.CurrentHealth > health.MaxHealth {
				health.CurrentHealth = health.MaxHealth
			}
		case config.StatDashCharge:
			for i := 0; i < int(e.Add) && dash.Charges < dash.MaxCharges; i++ {
				AddDashCharge(dash)
			}
		}
	}
	return nil
}

// AddDashCharge 立即恢复一个充能，并取消最晚到期的恢复计时
func AddDashCharge(dash *components.DashComponent) {
	if dash.Charges >= dash.MaxCharges {
		return
	}
	dash.Charges++
	if n := len(dash.RechargeAt); n > 0 {
		dash.RechargeAt = dash.RechargeAt[:n-1]
	}
}

func modify(v float64, e config.StatEffect) float64 {
	if e.Multiply != 0 {
		v *= e.Multiply
	}
	return v + e.Add
}
