package systems

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
)

// FindPlayer 返回存活的玩家实体（ID 最小者）
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// LiveEnemyCount 返回未被标记删除的敌人数量
func LiveEnemyCount(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
}

// RecordKills 累计击杀数，返回新获得的升级点
// 每第 killsPerPoint 次击杀奖励 1 点
func RecordKills(player *components.PlayerComponent, kills, killsPerPoint int) int {
	points := 0
	for i := 0; i < kills; i++ {
		player.KillCount++
		if killsPerPoint > 0 && player.KillCount%killsPerPoint == 0 {
			points++
		}
	}
	return points
}

// damageEnemy 对敌人造成伤害，生命值归零时标记删除并返回 true
func damageEnemy(em *ecs.EntityManager, id ecs.EntityID, damage int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || !em.IsAlive(id) {
		return false
	}
	health.CurrentHealth -= damage
	if health.CurrentHealth <= 0 {
		health.CurrentHealth = 0
		em.DestroyEntity(id)
		return true
	}
	startFlash(em, id)
	return false
}
