package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/roguedash/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground   = color.RGBA{R: 24, G: 26, B: 33, A: 255}
	colorText         = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colorTextDim      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	colorNotice       = color.RGBA{R: 255, G: 190, B: 90, A: 255}
	colorPlayer       = color.RGBA{R: 80, G: 170, B: 255, A: 255}
	colorInvulnerable = color.RGBA{R: 255, G: 235, B: 120, A: 255}
	colorEnemy        = color.RGBA{R: 220, G: 70, B: 70, A: 255}
	colorBoss         = color.RGBA{R: 170, G: 60, B: 200, A: 255}
	colorTutorialBoss = color.RGBA{R: 240, G: 140, B: 40, A: 255}
	colorProjectile   = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	colorHealthBar    = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	colorBarBack      = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colorOverlay      = color.RGBA{A: 170}

	colorButton         = color.RGBA{R: 55, G: 60, B: 75, A: 255}
	colorButtonHover    = color.RGBA{R: 80, G: 90, B: 115, A: 255}
	colorButtonDisabled = color.RGBA{R: 40, G: 40, B: 45, A: 255}
	colorButtonActive   = color.RGBA{R: 60, G: 120, B: 80, A: 255}
	colorButtonBorder   = color.RGBA{R: 120, G: 130, B: 150, A: 255}
)

// entityColor 返回实体的绘制颜色
func entityColor(v session.EntityView) color.Color {
	switch v.Kind {
	case session.EntityPlayer:
		if v.Invulnerable {
			return colorInvulnerable
		}
		return colorPlayer
	case session.EntityBoss:
		return flashed(colorBoss, v.Flash)
	case session.EntityTutorialBoss:
		return flashed(colorTutorialBoss, v.Flash)
	case session.EntityProjectile:
		return colorProjectile
	default:
		return flashed(colorEnemy, v.Flash)
	}
}

// flashed 按强度把颜色向白色插值
func flashed(c color.RGBA, intensity float64) color.RGBA {
	if intensity <= 0 {
		return c
	}
	lerp := func(v uint8) uint8 {
		return v + uint8(float64(255-v)*intensity)
	}
	return color.RGBA{R: lerp(c.R), G: lerp(c.G), B: lerp(c.B), A: c.A}
}

func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = HUDLineHeight
	text.Draw(screen, str, s.face, op)
}

func (s *GameScene) drawTitle(screen *ebiten.Image, title string) {
	w, _ := s.session.ScreenSize()
	s.drawText(screen, title, float64(w)/2, 70, colorText, text.AlignCenter)

	hud := s.session.HUD()
	if hud.Account != "" {
		s.drawText(screen, fmt.Sprintf("%s - best endless level %d", hud.Account, hud.Highscore),
			float64(w)/2, 100, colorTextDim, text.AlignCenter)
	}
}

func (s *GameScene) drawAccountSelection(screen *ebiten.Image) {
	w, _ := s.session.ScreenSize()
	s.drawTitle(screen, "SELECT OR CREATE ACCOUNT")

	name := s.session.NameInput()
	if math.Mod(s.cursorTimer, 1.0) < 0.5 {
		name += "_"
	}
	s.drawText(screen, "Name: "+name, float64(w)/2, 120, colorText, text.AlignCenter)
}

// drawWorld 绘制所有实体（中心坐标）
func (s *GameScene) drawWorld(screen *ebiten.Image) {
	for _, v := range s.session.Entities() {
		x, y := float32(v.X-v.W/2), float32(v.Y-v.H/2)
		w, h := float32(v.W), float32(v.H)

		if v.Kind == session.EntityProjectile {
			vector.DrawFilledCircle(screen, float32(v.X), float32(v.Y), w/2, entityColor(v), true)
			continue
		}
		vector.DrawFilledRect(screen, x, y, w, h, entityColor(v), false)

		if v.Kind != session.EntityPlayer && v.HealthRatio < 1 {
			barY := y - EnemyBarOffset
			vector.DrawFilledRect(screen, x, barY, w, EnemyBarHeight, colorBarBack, false)
			vector.DrawFilledRect(screen, x, barY, w*float32(v.HealthRatio), EnemyBarHeight, colorHealthBar, false)
		}
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	hud := s.session.HUD()
	x, y := float32(HUDMarginX), float32(HUDMarginY)

	// 生命条
	vector.DrawFilledRect(screen, x, y, HealthBarWidth, HealthBarH, colorBarBack, false)
	vector.DrawFilledRect(screen, x, y, HealthBarWidth*float32(hud.HealthRatio), HealthBarH, colorHealthBar, false)
	s.drawText(screen, fmt.Sprintf("%d/%d", hud.Health, hud.MaxHealth),
		float64(x)+HealthBarWidth+8, float64(y)-1, colorText, text.AlignStart)

	lines := fmt.Sprintf("Level %d  (%s)\nKills %d   Points %d\nEnemies %d",
		hud.Level, hud.Mode, hud.Kills, hud.UpgradePoints, hud.EnemiesLeft)
	if hud.Zen {
		lines += fmt.Sprintf("\nZen wave %d/%d", hud.ZenWave, hud.ZenBatch)
	}
	s.drawText(screen, lines, float64(x), float64(y)+HealthBarH+8, colorText, text.AlignStart)

	// 冲刺充能：已充满的实心，正在恢复的按进度填充
	sw, _ := s.session.ScreenSize()
	px := float32(sw) - HUDMarginX - float32(hud.DashMaxCharges)*(DashPipSize+DashPipGap)
	for i := 0; i < hud.DashMaxCharges; i++ {
		pip := px + float32(i)*(DashPipSize+DashPipGap)
		vector.DrawFilledRect(screen, pip, y, DashPipSize, DashPipSize, colorBarBack, false)
		switch {
		case i < hud.DashCharges:
			vector.DrawFilledRect(screen, pip, y, DashPipSize, DashPipSize, colorPlayer, false)
		case i == hud.DashCharges:
			fill := DashPipSize * float32(hud.DashProgress)
			vector.DrawFilledRect(screen, pip, y+DashPipSize-fill, DashPipSize, fill, colorPlayer, false)
		}
	}
}

// drawOverlay 非战斗状态下压暗世界并显示标题
func (s *GameScene) drawOverlay(screen *ebiten.Image) {
	var title string
	switch s.session.State() {
	case session.StatePaused:
		title = "PAUSED"
	case session.StateUpgrading:
		title = fmt.Sprintf("LEVEL %d - UPGRADES  (%d pt)", s.session.HUD().Level, s.session.HUD().UpgradePoints)
	case session.StateSkillTree:
		title = fmt.Sprintf("SKILL TREE  (%d pt)", s.session.HUD().UpgradePoints)
	case session.StateGameOver:
		title = "GAME OVER"
	case session.StateGameWon:
		title = "VICTORY"
	default:
		return
	}

	w, h := s.session.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)
	s.drawText(screen, title, float64(w)/2, 110, colorText, text.AlignCenter)
}

func (s *GameScene) drawButtons(screen *ebiten.Image) {
	for _, b := range s.session.Buttons() {
		fill := colorButton
		switch {
		case !b.Enabled && !b.Active:
			fill = colorButtonDisabled
		case b.Active:
			fill = colorButtonActive
		case b.ID == s.hovered:
			fill = colorButtonHover
		}
		x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorButtonBorder, false)

		clr := colorText
		if !b.Enabled {
			clr = colorTextDim
		}
		s.drawText(screen, b.Label, b.X+12, b.Y+b.H/2-7, clr, text.AlignStart)
	}
}

func (s *GameScene) drawNotice(screen *ebiten.Image) {
	notice := s.session.Notice()
	if notice == "" {
		return
	}
	w, h := s.session.ScreenSize()
	s.drawText(screen, notice, float64(w)/2, float64(h)-40, colorNotice, text.AlignCenter)
}
