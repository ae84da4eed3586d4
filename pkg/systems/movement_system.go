package systems

import (
	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/utils"
)

// MovementSystem 根据输入方向移动玩家，并限制在屏幕内
type MovementSystem struct {
	em  *ecs.EntityManager
	cfg *config.BalanceConfig
}

// NewMovementSystem 创建玩家移动系统
func NewMovementSystem(em *ecs.EntityManager, cfg *config.BalanceConfig) *MovementSystem {
	return &MovementSystem{em: em, cfg: cfg}
}

// Update 移动所有玩家实体
// 斜向移动与直线移动速度相同（方向归一化）
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if dx, dy, ok := utils.Normalize(player.MoveX, player.MoveY); ok {
			pos.X += dx * player.Speed * deltaTime
			pos.Y += dy * player.Speed * deltaTime
		}
		ClampToScreen(s.cfg, pos, s.cfg.Player.Size)
	}
}

// ClampToScreen 将中心坐标限制在屏幕内（保留半个体型）
func ClampToScreen(cfg *config.BalanceConfig, pos *components.PositionComponent, size float64) {
	half := size / 2
	pos.X = utils.Clamp(pos.X, half, float64(cfg.Screen.Width)-half)
	pos.Y = utils.Clamp(pos.Y, half, float64(cfg.Screen.Height)-half)
}
