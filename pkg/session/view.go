package session

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/systems"
)

// HUD 战斗界面显示的数据
type HUD struct {
	Account        string
	Highscore      int
	Mode           game.Mode
	Zen            bool
	ZenWave        int // 禅模式批次内当前波次（1 起）
	ZenBatch       int
	Level          int
	Health         int
	MaxHealth      int
	HealthRatio    float64
	Kills          int
	UpgradePoints  int
	DashCharges    int
	DashMaxCharges int
	DashProgress   float64 // 下一次充能的恢复进度 ∈ [0, 1]
	EnemiesLeft    int
}

// HUD 返回当前显示数据
func (s *Session) HUD() HUD {
	hud := HUD{ZenBatch: 1, DashProgress: 1}
	if name, acc, ok := s.accounts.Current(); ok {
		hud.Account = name
		hud.Highscore = acc.Highscore
	}
	if s.run == nil {
		return hud
	}

	hud.Mode = s.run.Mode
	hud.Zen = s.run.Zen
	hud.Level = s.run.Level
	hud.UpgradePoints = s.run.UpgradePoints
	hud.EnemiesLeft = systems.LiveEnemyCount(s.em)
	if s.run.Zen {
		hud.ZenWave = s.zenWave + 1
		hud.ZenBatch = s.zenBatchSize()
	}

	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, s.playerID); ok {
		hud.Health = health.CurrentHealth
		hud.MaxHealth = health.MaxHealth
		if health.MaxHealth > 0 {
			hud.HealthRatio = float64(health.CurrentHealth) / float64(health.MaxHealth)
		}
	}
	if player, ok := s.playerComponent(); ok {
		hud.Kills = player.KillCount
	}
	if dash, ok := ecs.GetComponent[*components.DashComponent](s.em, s.playerID); ok {
		hud.DashCharges = dash.Charges
		hud.DashMaxCharges = dash.MaxCharges
		hud.DashProgress = systems.DashProgress(dash, s.clock.Now())
	}
	return hud
}

// EntityKind 绘制时区分的实体类别
type EntityKind string

const (
	EntityPlayer       EntityKind = "player"
	EntityEnemy        EntityKind = "enemy"
	EntityBoss         EntityKind = "boss"
	EntityTutorialBoss EntityKind = "tutorial_boss"
	EntityProjectile   EntityKind = "projectile"
)

// EntityView 一个实体的绘制数据（中心坐标）
type EntityView struct {
	ID           ecs.EntityID
	Kind         EntityKind
	X, Y         float64
	W, H         float64
	HealthRatio  float64
	Invulnerable bool
	Flash        float64 // 受击闪白强度 ∈ [0, 1]
}

// Entities 按 ID 顺序返回所有可见实体
func (s *Session) Entities() []EntityView {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.em)
	views := make([]EntityView, 0, len(ids))
	now := s.clock.Now()

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		v := EntityView{ID: id, X: pos.X, Y: pos.Y, W: col.Width, H: col.Height, HealthRatio: 1}

		switch {
		case ecs.HasComponent[*components.PlayerComponent](s.em, id):
			player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
			v.Kind = EntityPlayer
			v.Invulnerable = now < player.InvulnerableUntil
		case ecs.HasComponent[*components.EnemyComponent](s.em, id):
			enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
			switch enemy.Kind {
			case components.EnemyBoss:
				v.Kind = EntityBoss
			case components.EnemyTutorialBoss:
				v.Kind = EntityTutorialBoss
			default:
				v.Kind = EntityEnemy
			}
		case ecs.HasComponent[*components.ProjectileComponent](s.em, id):
			v.Kind = EntityProjectile
		default:
			continue
		}

		if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id); ok && health.MaxHealth > 0 {
			v.HealthRatio = float64(health.CurrentHealth) / float64(health.MaxHealth)
		}
		if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.em, id); ok {
			v.Flash = flash.Intensity()
		}
		views = append(views, v)
	}
	return views
}

// ScreenSize 逻辑屏幕尺寸
func (s *Session) ScreenSize() (int, int) {
	return s.balance.Screen.Width, s.balance.Screen.Height
}
