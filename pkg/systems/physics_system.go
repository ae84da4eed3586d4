package systems

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
)

// CollisionResult 一帧碰撞检测的结果
type CollisionResult struct {
	Kills        int // 被子弹击杀的敌人数
	PlayerHits   int // 撞上玩家的敌人数
	PlayerDamage int // 玩家受到的总伤害
	PlayerDied   bool
}

// PhysicsSystem 碰撞检测
//
// 检测顺序：
//  1. 子弹与敌人：子弹被删除并造成伤害，血量归零的敌人被删除
//  2. 敌人与玩家：玩家存活且不处于无敌时，敌人被删除并伤害玩家
//
// 实体只做标记，由调用方在所有系统更新后统一清理。
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建碰撞系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// checkAABBCollision 检查两个中心对齐的碰撞盒是否重叠（边界接触也算）
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, right1 := pos1.X-col1.Width/2, pos1.X+col1.Width/2
	top1, bottom1 := pos1.Y-col1.Height/2, pos1.Y+col1.Height/2
	left2, right2 := pos2.X-col2.Width/2, pos2.X+col2.Width/2
	top2, bottom2 := pos2.Y-col2.Height/2, pos2.Y+col2.Height/2

	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// Update 执行一帧碰撞检测
func (ps *PhysicsSystem) Update(now float64) CollisionResult {
	var result CollisionResult

	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](ps.em)
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](ps.em)

	for _, pid := range projectiles {
		pPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, pid)
		pCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, pid)
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](ps.em, pid)

		for _, eid := range enemies {
			if !ps.em.IsAlive(eid) {
				continue
			}
			ePos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, eid)
			eCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, eid)
			if !checkAABBCollision(pPos, pCol, ePos, eCol) {
				continue
			}

			ps.em.DestroyEntity(pid)
			if damageEnemy(ps.em, eid, proj.Damage) {
				result.Kills++
			}
			break
		}
	}

	playerID, ok := FindPlayer(ps.em)
	if !ok {
		return result
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](ps.em, playerID)
	health, ok := ecs.GetComponent[*components.HealthComponent](ps.em, playerID)
	if !ok || health.CurrentHealth <= 0 || now < player.InvulnerableUntil {
		return result
	}
	plPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, playerID)
	plCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, playerID)

	for _, eid := range enemies {
		if !ps.em.IsAlive(eid) {
			continue
		}
		ePos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, eid)
		eCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, eid)
		if !checkAABBCollision(plPos, plCol, ePos, eCol) {
			continue
		}

		enemy, _ := ecs.GetComponent[*components.EnemyComponent](ps.em, eid)
		ps.em.DestroyEntity(eid)
		result.PlayerHits++
		result.PlayerDamage += enemy.Damage

		health.CurrentHealth -= enemy.Damage
		if health.CurrentHealth <= 0 {
			health.CurrentHealth = 0
			result.PlayerDied = true
			break
		}
	}
	return result
}
