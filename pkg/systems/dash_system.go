package systems

import (
	"log"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/utils"
)

// 冲刺相关的技能升级项
const (
	UpgradeDashBlood        = "dash_blood"
	UpgradeDashBloodFrenzy  = "dash_blood_frenzy"
	UpgradeDashHegemon      = "dash_hegemon"
	UpgradeDashHegemonGuard = "dash_hegemon_bulwark"
)

// UpgradeChecker 查询已解锁的技能升级项（由 game.SkillTree 实现）
type UpgradeChecker interface {
	HasUpgrade(upgradeID string) bool
}

// DashResult 一次冲刺的结果
type DashResult struct {
	Activated bool
	Kills     int // 血魔宗路径伤害击杀的敌人数
}

// DashSystem 冲刺系统
//
// 职责：
//   - 按各自的计时恢复缺失的充能
//   - 处理冲刺激活：瞬间位移、路径伤害、冲刺后无敌
type DashSystem struct {
	em       *ecs.EntityManager
	cfg      *config.BalanceConfig
	upgrades UpgradeChecker
}

// NewDashSystem 创建冲刺系统，upgrades 可为 nil（没有任何升级）
func NewDashSystem(em *ecs.EntityManager, cfg *config.BalanceConfig, upgrades UpgradeChecker) *DashSystem {
	return &DashSystem{em: em, cfg: cfg, upgrades: upgrades}
}

func (s *DashSystem) has(upgradeID string) bool {
	return s.upgrades != nil && s.upgrades.HasUpgrade(upgradeID)
}

// Update 恢复所有到期的充能
func (s *DashSystem) Update(now float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DashComponent](s.em) {
		dash, _ := ecs.GetComponent[*components.DashComponent](s.em, id)
		for len(dash.RechargeAt) > 0 && dash.RechargeAt[0] <= now {
			dash.RechargeAt = dash.RechargeAt[1:]
			dash.Charges++
		}
	}
}

// Activate 沿玩家当前输入方向冲刺
//
// 输入方向为零或没有充能时不做任何事。
// 消耗的充能从 now 开始独立计时恢复。
func (s *DashSystem) Activate(playerID ecs.EntityID, now float64) DashResult {
	player, ok1 := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	pos, ok2 := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	dash, ok3 := ecs.GetComponent[*components.DashComponent](s.em, playerID)
	if !ok1 || !ok2 || !ok3 {
		return DashResult{}
	}

	dx, dy, ok := utils.Normalize(player.MoveX, player.MoveY)
	if !ok || dash.Charges <= 0 {
		return DashResult{}
	}

	dash.Charges--
	dash.RechargeAt = append(dash.RechargeAt, now+dash.Cooldown)

	fromX, fromY := pos.X, pos.Y
	pos.X += dx * dash.Distance
	pos.Y += dy * dash.Distance
	ClampToScreen(s.cfg, pos, s.cfg.Player.Size)

	result := DashResult{Activated: true}
	if s.has(UpgradeDashBlood) {
		damage := s.cfg.Progression.DashBloodDamage
		if s.has(UpgradeDashBloodFrenzy) {
			damage *= 2
		}
		result.Kills = s.damagePath(fromX, fromY, pos.X, pos.Y, damage)
	}

	switch {
	case s.has(UpgradeDashHegemonGuard):
		player.InvulnerableUntil = now + s.cfg.Progression.DashBulwarkInvulnerability
	case s.has(UpgradeDashHegemon):
		player.InvulnerableUntil = now + s.cfg.Progression.DashHegemonInvulnerability
	}

	log.Printf("[DashSystem] Player %d dashed (%.0f, %.0f) -> (%.0f, %.0f), charges left=%d, kills=%d",
		playerID, fromX, fromY, pos.X, pos.Y, dash.Charges, result.Kills)
	return result
}

// damagePath 对冲刺路径扫过的敌人造成伤害，返回击杀数
// 敌人碰撞盒按玩家体型扩展，等价于玩家矩形沿路径扫过
func (s *DashSystem) damagePath(x0, y0, x1, y1 float64, damage int) int {
	size := s.cfg.Player.Size
	kills := 0
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !utils.SegmentIntersectsRect(x0, y0, x1, y1, pos.X, pos.Y, col.Width+size, col.Height+size) {
			continue
		}
		if damageEnemy(s.em, id, damage) {
			kills++
		}
	}
	return kills
}

// DashProgress 返回下一次充能的恢复进度 ∈ [0, 1]，充能已满时为 1
func DashProgress(dash *components.DashComponent, now float64) float64 {
	if dash == nil || len(dash.RechargeAt) == 0 || dash.Cooldown <= 0 {
		return 1
	}
	remaining := dash.RechargeAt[0] - now
	return utils.Clamp(1-remaining/dash.Cooldown, 0, 1)
}
