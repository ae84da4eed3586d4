package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/entities"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/systems"
)

// SelectAccount 选择已有账户，进入开始界面
func (s *Session) SelectAccount(name string) error {
	if err := s.require("select account", StateAccountSelection); err != nil {
		return err
	}
	if err := s.accounts.Select(name); err != nil {
		return err
	}

	if s.settings != nil {
		s.settings.SetLastAccount(name)
		if err := s.settings.Save(); err != nil {
			log.Printf("[Session] Warning: failed to save preferences: %v", err)
		}
	}

	acc, _ := s.accounts.Get(name)
	log.Printf("[Session] Account %q selected (highscore=%d)", name, acc.Highscore)
	s.nameInput = ""
	s.setState(StateStartScreen)
	return nil
}

// CreateAccount 创建账户并选择
func (s *Session) CreateAccount(name string) error {
	if err := s.require("create account", StateAccountSelection); err != nil {
		return err
	}
	if err := s.accounts.Create(name); err != nil {
		s.notice = err.Error()
		return err
	}
	return s.SelectAccount(name)
}

// SwitchAccount 返回账户选择界面
func (s *Session) SwitchAccount() error {
	if err := s.require("switch account", StateStartScreen); err != nil {
		return err
	}
	s.setState(StateAccountSelection)
	return nil
}

// SetZen 设置禅模式开关（只影响之后开始的新游戏）
func (s *Session) SetZen(enabled bool) error {
	if err := s.require("toggle zen", StateStartScreen); err != nil {
		return err
	}
	s.zen = enabled
	if s.settings != nil {
		s.settings.SetZenMode(enabled)
		if err := s.settings.Save(); err != nil {
			log.Printf("[Session] Warning: failed to save preferences: %v", err)
		}
	}
	return nil
}

// StartGame 以指定模式开始新的一局
func (s *Session) StartGame(mode game.Mode) error {
	if err := s.require("start game", StateStartScreen); err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: mode %q", game.ErrNotFound, mode)
	}

	s.tree.Reset()
	rs := game.NewRunState(mode, s.zen, entities.DefaultPlayerSnapshot(s.balance))
	if err := s.beginRun(rs); err != nil {
		return err
	}
	s.continued = false
	return nil
}

// Continue 从当前账户的存档继续
//
// 没有存档时返回 ErrNotFound（按钮不可用）；存档损坏时记录日志，
// 按没有存档处理并返回 ErrCorruptSave，状态不变。
func (s *Session) Continue() error {
	if err := s.require("continue", StateStartScreen); err != nil {
		return err
	}
	_, acc, ok := s.accounts.Current()
	if !ok {
		return fmt.Errorf("%w: no account selected", game.ErrNotFound)
	}

	rs, err := s.saves.Load(acc.SaveFile)
	if err != nil {
		if errors.Is(err, game.ErrCorruptData) {
			log.Printf("[Session] Ignoring corrupt save %s: %v", acc.SaveFile, err)
			s.canContinue = false
		}
		return err
	}
	if err := s.tree.Restore(rs.Skills); err != nil {
		log.Printf("[Session] Ignoring save %s with invalid skill progress: %v", acc.SaveFile, err)
		s.canContinue = false
		return fmt.Errorf("%w: %v", game.ErrCorruptSave, err)
	}

	if err := s.beginRun(rs); err != nil {
		return err
	}
	s.continued = true
	return nil
}

// beginRun 重建世界并生成当前关卡的第一波
func (s *Session) beginRun(rs *game.RunState) error {
	modeCfg, ok := s.balance.GetMode(string(rs.Mode))
	if !ok {
		return fmt.Errorf("%w: mode %q has no configuration", game.ErrNotFound, rs.Mode)
	}

	s.em.Clear()
	s.clock.Reset()

	playerID, err := entities.NewPlayerEntity(s.em, s.balance, rs.Player, s.clock.Now())
	if err != nil {
		return err
	}

	s.run = rs
	s.modeCfg = modeCfg
	s.playerID = playerID
	s.zenWave = rs.ZenWave
	if s.zenWave >= s.zenBatchSize() {
		s.zenWave = 0
	}
	s.waves.SpawnWave(modeCfg, rs.Level+s.zenWave)

	log.Printf("[Session] Run started: Mode=%s, Zen=%v, Level=%d, Points=%d",
		rs.Mode, rs.Zen, rs.Level, rs.UpgradePoints)
	s.setState(StatePlaying)
	return nil
}

// TogglePause 暂停 / 继续
func (s *Session) TogglePause() error {
	switch s.state {
	case StatePlaying:
		s.setState(StatePaused)
		return nil
	case StatePaused:
		s.setState(StatePlaying)
		return nil
	}
	return s.require("toggle pause", StatePlaying, StatePaused)
}

// Dash 沿当前移动方向冲刺
func (s *Session) Dash() error {
	if err := s.require("dash", StatePlaying); err != nil {
		return err
	}
	result := s.dash.Activate(s.playerID, s.clock.Now())
	if result.Kills > 0 {
		s.recordKills(result.Kills)
	}
	return nil
}

// NextLevel 离开升级界面，生成下一波
func (s *Session) NextLevel() error {
	if err := s.require("next level", StateUpgrading); err != nil {
		return err
	}
	s.zenWave = 0
	s.waves.SpawnWave(s.modeCfg, s.run.Level)
	s.setState(StatePlaying)
	return nil
}

// Purchase 在升级界面购买属性
func (s *Session) Purchase(itemID string) error {
	if err := s.require("purchase", StateUpgrading); err != nil {
		return err
	}
	if err := s.shop.Purchase(itemID, &s.run.UpgradePoints, s.applyEffects); err != nil {
		s.notice = err.Error()
		return err
	}
	return nil
}

// OpenSkillTree 从升级界面打开技能树
func (s *Session) OpenSkillTree() error {
	if err := s.require("open skill tree", StateUpgrading); err != nil {
		return err
	}
	s.setState(StateSkillTree)
	return nil
}

// CloseSkillTree 返回升级界面
func (s *Session) CloseSkillTree() error {
	if err := s.require("close skill tree", StateSkillTree); err != nil {
		return err
	}
	s.setState(StateUpgrading)
	return nil
}

// LearnSkill 学习技能
func (s *Session) LearnSkill(skillID string) error {
	if err := s.require("learn skill", StateSkillTree); err != nil {
		return err
	}
	if err := s.tree.SpendAndLearn(skillID, &s.run.UpgradePoints); err != nil {
		s.notice = err.Error()
		return err
	}
	return nil
}

// UnlockUpgrade 解锁技能升级项，属性类升级立即生效
func (s *Session) UnlockUpgrade(skillID, upgradeID string) error {
	if err := s.require("unlock upgrade", StateSkillTree); err != nil {
		return err
	}
	if err := s.tree.SpendAndUnlock(skillID, upgradeID, &s.run.UpgradePoints, s.applyEffects); err != nil {
		s.notice = err.Error()
		return err
	}
	return nil
}

func (s *Session) applyEffects(effects []config.StatEffect) error {
	return entities.ApplyStatEffects(s.em, s.playerID, effects)
}

// MainMenu 放弃当前一局回到开始界面，存档不受影响
func (s *Session) MainMenu() error {
	if err := s.require("main menu", StatePaused, StateUpgrading); err != nil {
		return err
	}
	s.endRun()
	s.setState(StateStartScreen)
	return nil
}

// SaveAndExit 保存当前一局并请求退出
func (s *Session) SaveAndExit() error {
	if err := s.require("save and exit", StatePaused, StateUpgrading); err != nil {
		return err
	}
	if err := s.saveRun(); err != nil {
		s.notice = fmt.Sprintf("save failed: %v", err)
		return err
	}
	s.quit = true
	return nil
}

// Restart 结算后回到开始界面
func (s *Session) Restart() error {
	if err := s.require("restart", StateGameOver, StateGameWon); err != nil {
		return err
	}
	s.endRun()
	s.setState(StateStartScreen)
	return nil
}

// SaveOnExit 窗口关闭时保存进行中的一局
func (s *Session) SaveOnExit() bool {
	switch s.state {
	case StatePlaying, StatePaused, StateUpgrading, StateSkillTree:
	default:
		return true
	}
	if err := s.saveRun(); err != nil {
		log.Printf("[Session] Failed to save on exit: %v", err)
		return false
	}
	return true
}

func (s *Session) saveRun() error {
	_, acc, ok := s.accounts.Current()
	if !ok {
		return fmt.Errorf("%w: no account selected", game.ErrNotFound)
	}
	s.syncRun()
	return s.saves.Save(acc.SaveFile, s.run)
}

// syncRun 把实体上的玩家属性和技能进度写回 RunState
func (s *Session) syncRun() {
	if s.run == nil {
		return
	}
	if snap, ok := entities.SnapshotPlayer(s.em, s.playerID); ok {
		s.run.Player = snap
	}
	s.run.Skills = s.tree.Progress()
	s.run.ZenWave = s.zenWave
}

func (s *Session) endRun() {
	s.em.Clear()
	s.clock.Reset()
	s.tree.Reset()
	s.run = nil
	s.playerID = 0
	s.continued = false
}

// recordKills 累计击杀并发放升级点
func (s *Session) recordKills(kills int) {
	player, ok := s.playerComponent()
	if !ok {
		return
	}
	points := systems.RecordKills(player, kills, s.balance.Progression.KillsPerPoint)
	s.run.UpgradePoints += points
	if points > 0 {
		log.Printf("[Session] Kill count %d, +%d upgrade points (total %d)",
			player.KillCount, points, s.run.UpgradePoints)
	}
}
