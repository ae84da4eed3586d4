package scenes

import (
	"github.com/decker502/roguedash/pkg/session"
	"github.com/decker502/roguedash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readInput 汇总本帧的键盘、鼠标和触摸输入
func (s *GameScene) readInput() session.Input {
	var in session.Input
	state := s.session.State()

	if state == session.StateAccountSelection {
		in.Text = ebiten.AppendInputChars(nil)
		in.Backspace = repeatingKeyPressed(ebiten.KeyBackspace)
	}

	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)

	// Esc 在战斗中暂停，在其他界面返回
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if state == session.StatePlaying || state == session.StatePaused {
			in.Pause = true
		} else {
			in.Cancel = true
		}
	}
	if state == session.StatePlaying && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Pause = true
	}

	if state == session.StatePlaying {
		s.readMovement(&in)
		return in
	}

	s.stick.Reset()
	if pressed, x, y := utils.PointerJustPressed(); pressed {
		in.Clicks = append(in.Clicks, session.Click{X: float64(x), Y: float64(y)})
	}
	return in
}

// readMovement 方向键 / WASD 和虚拟摇杆控制移动，空格、Shift 或第二根手指冲刺
func (s *GameScene) readMovement(in *session.Input) {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}

	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		in.Clicks = append(in.Clicks, session.Click{X: float64(x), Y: float64(y), Button: session.ClickSecondary})
	}

	wasDragging := s.stick.IsDragging()
	s.stick.Update(utils.IsMobile())
	if s.stick.IsDragging() {
		if dx, dy := s.stick.Direction(StickDeadZone); dx != 0 || dy != 0 {
			in.MoveX, in.MoveY = dx, dy
		}
		if wasDragging && len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			in.Dash = true
		}
	}
}

// repeatingKeyPressed 按住时按键盘重复节奏触发
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
