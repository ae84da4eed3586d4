package session

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/utils"
)

// 按钮ID
const (
	ButtonCreateAccount = "create"
	ButtonSwitchAccount = "switch_account"
	ButtonZen           = "zen"
	ButtonContinue      = "continue"
	ButtonSkillTree     = "skills"
	ButtonNextLevel     = "next_level"
	ButtonBack          = "back"
	ButtonResume        = "resume"
	ButtonMainMenu      = "main_menu"
	ButtonSaveExit      = "save_exit"
	ButtonRestart       = "restart"

	prefixAccount = "account:"
	prefixMode    = "mode:"
	prefixShop    = "shop:"
	prefixLearn   = "learn:"
	prefixUnlock  = "unlock:"
)

const (
	buttonWidth  = 380.0
	buttonHeight = 44.0
	buttonGap    = 54.0
	buttonTop    = 150.0
)

// ButtonView 按钮的绘制数据（左上角坐标）
type ButtonView struct {
	ID      string
	Label   string
	X, Y    float64
	W, H    float64
	Enabled bool // 不可用的按钮不响应点击
	Active  bool // 已学习 / 已解锁 / 开关打开
}

// Contains 点是否落在按钮内
func (b ButtonView) Contains(x, y float64) bool {
	return utils.PointInRect(x, y, b.X, b.Y, b.W, b.H)
}

var modeLabels = map[game.Mode]string{
	game.ModeNormal:   "Normal",
	game.ModeDungeon:  "Dungeon",
	game.ModeEndless:  "Endless",
	game.ModeTutorial: "Tutorial",
}

// Buttons 返回当前状态下的按钮（纵向排列，水平居中）
func (s *Session) Buttons() []ButtonView {
	var specs []ButtonView
	add := func(id, label string, enabled, active bool) {
		specs = append(specs, ButtonView{ID: id, Label: label, Enabled: enabled, Active: active})
	}

	switch s.state {
	case StateAccountSelection:
		for _, name := range s.accounts.Names() {
			acc, _ := s.accounts.Get(name)
			add(prefixAccount+name, fmt.Sprintf("%s  (best level %d)", name, acc.Highscore), true, name == s.nameInput)
		}
		valid := game.ValidateAccountName(s.nameInput) == nil
		if _, exists := s.accounts.Get(s.nameInput); exists {
			valid = false
		}
		add(ButtonCreateAccount, "Create account: "+s.nameInput, valid, false)

	case StateStartScreen:
		for _, mode := range game.Modes() {
			add(prefixMode+string(mode), modeLabels[mode], true, false)
		}
		zenLabel := "Zen mode: off"
		if s.zen {
			zenLabel = "Zen mode: on"
		}
		add(ButtonZen, zenLabel, true, s.zen)
		add(ButtonContinue, "Continue", s.canContinue, false)
		add(ButtonSwitchAccount, "Switch account", true, false)

	case StateUpgrading:
		for _, item := range s.shop.Items() {
			add(prefixShop+item.ID, fmt.Sprintf("%s  (%d pt)", item.Name, item.Cost),
				s.shop.CanAfford(item.ID, s.run.UpgradePoints), false)
		}
		add(ButtonSkillTree, "Skill tree", true, false)
		add(ButtonNextLevel, "Next level", true, false)
		add(ButtonSaveExit, "Save and exit", true, false)
		add(ButtonMainMenu, "Main menu", true, false)

	case StateSkillTree:
		for _, skill := range s.tree.Skills() {
			add(prefixLearn+skill.ID,
				fmt.Sprintf("%s  Lv.%d/%d  (%d pt)", skill.Name, skill.Level, s.tree.MaxLevel(), skill.Cost),
				s.tree.CanLearn(skill.ID, s.run.UpgradePoints), skill.IsLearned)
			for _, u := range skill.Upgrades {
				add(prefixUnlock+skill.ID+"/"+u.ID,
					fmt.Sprintf("  %s  (%d pt)", u.Name, u.Cost),
					s.tree.CanUnlock(skill.ID, u.ID, s.run.UpgradePoints), u.IsUnlocked)
			}
		}
		add(ButtonBack, "Back", true, false)

	case StatePaused:
		add(ButtonResume, "Resume", true, false)
		add(ButtonSaveExit, "Save and exit", true, false)
		add(ButtonMainMenu, "Main menu", true, false)

	case StateGameOver, StateGameWon:
		add(ButtonRestart, "Restart", true, false)
	}

	gap, height := buttonGap, buttonHeight
	if len(specs) > 10 {
		gap, height = 46, 38
	}
	x := float64(s.balance.Screen.Width)/2 - buttonWidth/2
	for i := range specs {
		specs[i].X = x
		specs[i].Y = buttonTop + float64(i)*gap
		specs[i].W = buttonWidth
		specs[i].H = height
	}
	return specs
}

// Press 按ID触发按钮
func (s *Session) Press(id string) error {
	switch {
	case strings.HasPrefix(id, prefixAccount):
		return s.SelectAccount(strings.TrimPrefix(id, prefixAccount))
	case strings.HasPrefix(id, prefixMode):
		return s.StartGame(game.Mode(strings.TrimPrefix(id, prefixMode)))
	case strings.HasPrefix(id, prefixShop):
		return s.Purchase(strings.TrimPrefix(id, prefixShop))
	case strings.HasPrefix(id, prefixLearn):
		return s.LearnSkill(strings.TrimPrefix(id, prefixLearn))
	case strings.HasPrefix(id, prefixUnlock):
		skillID, upgradeID, ok := strings.Cut(strings.TrimPrefix(id, prefixUnlock), "/")
		if !ok {
			return fmt.Errorf("%w: button %q", game.ErrNotFound, id)
		}
		return s.UnlockUpgrade(skillID, upgradeID)
	}

	switch id {
	case ButtonCreateAccount:
		return s.CreateAccount(s.nameInput)
	case ButtonSwitchAccount:
		return s.SwitchAccount()
	case ButtonZen:
		return s.SetZen(!s.zen)
	case ButtonContinue:
		return s.Continue()
	case ButtonSkillTree:
		return s.OpenSkillTree()
	case ButtonNextLevel:
		return s.NextLevel()
	case ButtonBack:
		return s.CloseSkillTree()
	case ButtonResume:
		if err := s.require("resume", StatePaused); err != nil {
			return err
		}
		return s.TogglePause()
	case ButtonMainMenu:
		return s.MainMenu()
	case ButtonSaveExit:
		return s.SaveAndExit()
	case ButtonRestart:
		return s.Restart()
	}
	return fmt.Errorf("%w: button %q", game.ErrNotFound, id)
}

// handleInput 分发一帧的输入
func (s *Session) handleInput(in Input) {
	if s.state == StateAccountSelection {
		s.editName(in)
	}

	if in.Pause {
		s.try(s.TogglePause())
	}

	if s.state == StatePlaying {
		if player, ok := s.playerComponent(); ok {
			player.MoveX, player.MoveY = in.MoveX, in.MoveY
		}
		if in.Dash {
			s.try(s.Dash())
		}
	}

	if in.Confirm {
		switch s.state {
		case StateAccountSelection:
			if _, exists := s.accounts.Get(s.nameInput); exists {
				s.try(s.SelectAccount(s.nameInput))
			} else {
				s.try(s.CreateAccount(s.nameInput))
			}
		case StateUpgrading:
			s.try(s.NextLevel())
		case StateGameOver, StateGameWon:
			s.try(s.Restart())
		}
	}

	if in.Cancel {
		switch s.state {
		case StateSkillTree:
			s.try(s.CloseSkillTree())
		case StatePaused:
			s.try(s.TogglePause())
		}
	}

	for _, c := range in.Clicks {
		// 战斗中右键冲刺，其余界面只响应主键
		if c.Button == ClickSecondary {
			if s.state == StatePlaying {
				s.try(s.Dash())
			}
			continue
		}
		for _, b := range s.Buttons() {
			if b.Enabled && b.Contains(c.X, c.Y) {
				s.try(s.Press(b.ID))
				break
			}
		}
	}
}

func (s *Session) editName(in Input) {
	if in.Backspace && s.nameInput != "" {
		_, size := utf8.DecodeLastRuneInString(s.nameInput)
		s.nameInput = s.nameInput[:len(s.nameInput)-size]
	}
	for _, r := range in.Text {
		if utf8.RuneCountInString(s.nameInput) >= 20 {
			break
		}
		s.nameInput += string(r)
	}
}

// try 记录输入触发的操作失败（状态不接受的操作静默忽略）
func (s *Session) try(err error) {
	if err != nil {
		log.Printf("[Session] %v", err)
	}
}

// ShopItem 查询商品定义
func (s *Session) ShopItem(id string) (config.ShopItem, bool) {
	return s.shop.Item(id)
}
