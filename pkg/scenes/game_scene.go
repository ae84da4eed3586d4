package scenes

import (
	"github.com/decker502/roguedash/pkg/session"
	"github.com/decker502/roguedash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	// HUD 布局
	HUDMarginX     = 16
	HUDMarginY     = 14
	HUDLineHeight  = 18
	HealthBarWidth = 200
	HealthBarH     = 12

	// 敌人头顶血条
	EnemyBarHeight = 4
	EnemyBarOffset = 6

	// 冲刺充能指示
	DashPipSize = 14
	DashPipGap  = 6

	// StickDeadZone 虚拟摇杆死区（像素）
	StickDeadZone = 12
)

// GameScene 唯一的游戏场景
//
// 会话负责全部规则，场景只做两件事：
//   - 把键盘、鼠标和触摸映射为 session.Input
//   - 按会话状态绘制世界、HUD 和按钮
type GameScene struct {
	session *session.Session
	stick   *utils.DragStick
	face    *text.GoXFace

	// 指针悬停的按钮 ID
	hovered string
	// 文本输入光标闪烁计时
	cursorTimer float64
}

// NewGameScene 创建游戏场景
func NewGameScene(sess *session.Session) *GameScene {
	return &GameScene{
		session: sess,
		stick:   utils.NewDragStick(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Session 返回场景驱动的会话
func (s *GameScene) Session() *session.Session {
	return s.session
}

// Update 读取输入并推进会话
func (s *GameScene) Update(deltaTime float64) {
	s.cursorTimer += deltaTime
	in := s.readInput()
	s.session.Update(deltaTime, in)
	s.updateHover()
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch s.session.State() {
	case session.StateAccountSelection:
		s.drawAccountSelection(screen)
	case session.StateStartScreen:
		s.drawTitle(screen, "ROGUE DASH")
	default:
		s.drawWorld(screen)
		s.drawHUD(screen)
		s.drawOverlay(screen)
	}

	s.drawButtons(screen)
	s.drawNotice(screen)
}

// SaveOnExit 窗口关闭时保存进行中的一局
func (s *GameScene) SaveOnExit() bool {
	return s.session.SaveOnExit()
}

// ShouldQuit 会话请求退出（保存并退出）
func (s *GameScene) ShouldQuit() bool {
	return s.session.ShouldQuit()
}

// updateHover 记录指针下方的可用按钮
func (s *GameScene) updateHover() {
	x, y := utils.PointerPosition()
	s.hovered = hoveredButton(s.session.Buttons(), float64(x), float64(y))
}

// hoveredButton 返回包含该点的第一个可用按钮
func hoveredButton(buttons []session.ButtonView, x, y float64) string {
	for _, b := range buttons {
		if b.Enabled && b.Contains(x, y) {
			return b.ID
		}
	}
	return ""
}
