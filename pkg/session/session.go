package session

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/systems"
)

// Config Session 的依赖
type Config struct {
	Balance  *config.BalanceConfig
	Skills   *config.SkillCatalog
	Shop     *config.UpgradeShopConfig
	Accounts *game.AccountStore
	Saves    *game.RunSerializer
	Settings *game.SettingsManager // 可为 nil，偏好不持久化
	Seed     int64                 // 敌人生成的随机种子
}

// Session 游戏会话
//
// 职责：
//   - 维护状态机，拒绝当前状态不接受的操作（ErrInvalidTransition）
//   - 在 Playing 状态下推进模拟：移动、冲刺、追击、射击、碰撞
//   - 波次清空时推进关卡，死亡或通关时结算
//   - 通过 AccountStore、RunSerializer 持久化最高分和存档
//
// 单线程使用，每帧调用一次 Update。
type Session struct {
	balance  *config.BalanceConfig
	accounts *game.AccountStore
	saves    *game.RunSerializer
	settings *game.SettingsManager
	tree     *game.SkillTree
	shop     *game.UpgradeShop

	em    *ecs.EntityManager
	clock game.Clock

	movement    *systems.MovementSystem
	dash        *systems.DashSystem
	seek        *systems.EnemySeekSystem
	projectiles *systems.ProjectileSystem
	combat      *systems.CombatSystem
	physics     *systems.PhysicsSystem
	waves       *systems.WaveSpawnSystem
	flashes     *systems.FlashEffectSystem

	state       State
	run         *game.RunState
	modeCfg     config.ModeConfig
	playerID    ecs.EntityID
	zen         bool // 开始界面的禅模式开关
	zenWave     int  // 禅模式批次内的波次序号（0 起）
	continued   bool // 当前这一局来自存档
	canContinue bool
	nameInput   string
	notice      string
	quit        bool
}

// New 创建会话，初始状态为账户选择
func New(cfg Config) (*Session, error) {
	if cfg.Balance == nil || cfg.Skills == nil || cfg.Accounts == nil || cfg.Saves == nil {
		return nil, fmt.Errorf("session config is incomplete")
	}

	tree, err := game.NewSkillTree(cfg.Skills)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Session{
		balance:     cfg.Balance,
		accounts:    cfg.Accounts,
		saves:       cfg.Saves,
		settings:    cfg.Settings,
		tree:        tree,
		shop:        game.NewUpgradeShop(cfg.Shop),
		em:          em,
		movement:    systems.NewMovementSystem(em, cfg.Balance),
		dash:        systems.NewDashSystem(em, cfg.Balance, tree),
		seek:        systems.NewEnemySeekSystem(em),
		projectiles: systems.NewProjectileSystem(em, cfg.Balance),
		combat:      systems.NewCombatSystem(em, cfg.Balance),
		physics:     systems.NewPhysicsSystem(em),
		waves:       systems.NewWaveSpawnSystem(em, cfg.Balance, rng),
		flashes:     systems.NewFlashEffectSystem(em),
		state:       StateAccountSelection,
	}

	if s.settings != nil {
		prefs := s.settings.GetSettings()
		s.zen = prefs.ZenMode
		if _, ok := s.accounts.Get(prefs.LastAccount); ok {
			s.nameInput = prefs.LastAccount
		}
	}
	return s, nil
}

// State 返回当前状态
func (s *Session) State() State {
	return s.state
}

// Run 返回当前一局的状态（没有进行中的一局时为 nil）
func (s *Session) Run() *game.RunState {
	if s.run == nil {
		return nil
	}
	s.syncRun()
	return s.run
}

// SkillTree 返回技能树
func (s *Session) SkillTree() *game.SkillTree {
	return s.tree
}

// Shop 返回属性商店
func (s *Session) Shop() *game.UpgradeShop {
	return s.shop
}

// World 返回实体管理器（只读使用）
func (s *Session) World() *ecs.EntityManager {
	return s.em
}

// Now 返回模拟时间
func (s *Session) Now() float64 {
	return s.clock.Now()
}

// Notice 返回最近一条提示信息（失败的操作、存储错误等）
func (s *Session) Notice() string {
	return s.notice
}

// NameInput 返回正在输入的账户名
func (s *Session) NameInput() string {
	return s.nameInput
}

// ZenEnabled 开始界面禅模式开关是否打开
func (s *Session) ZenEnabled() bool {
	return s.zen
}

// CanContinue 当前账户是否有可用的存档
func (s *Session) CanContinue() bool {
	return s.canContinue
}

// Quit 会话是否请求退出程序（保存并退出之后）
func (s *Session) Quit() bool {
	return s.quit
}

// ShouldQuit 同 Quit，供场景管理器查询
func (s *Session) ShouldQuit() bool {
	return s.quit
}

func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	log.Printf("[Session] %s -> %s", s.state, next)
	s.state = next
	s.notice = ""
	if next == StateStartScreen {
		s.refreshContinue()
	}
}

func (s *Session) refreshContinue() {
	s.canContinue = false
	if _, acc, ok := s.accounts.Current(); ok {
		s.canContinue = s.saves.HasValidSave(acc.SaveFile)
	}
}

// require 检查当前状态是否在允许列表中
func (s *Session) require(action string, allowed ...State) error {
	for _, st := range allowed {
		if s.state == st {
			return nil
		}
	}
	return fmt.Errorf("%w: %s in state %s", game.ErrInvalidTransition, action, s.state)
}

// Update 推进一帧：先处理输入，Playing 状态下再推进模拟
//
// 本帧开始时已在 Playing，敌人数在输入前取样，冲刺击杀也计入波次清空；
// 本帧由输入进入 Playing（继续、下一关、读档），在输入后取样。
func (s *Session) Update(deltaTime float64, in Input) {
	wasPlaying := s.state == StatePlaying
	prevEnemies := 0
	if wasPlaying {
		prevEnemies = systems.LiveEnemyCount(s.em)
	}

	s.handleInput(in)

	if s.state == StatePlaying {
		if !wasPlaying {
			prevEnemies = systems.LiveEnemyCount(s.em)
		}
		s.tick(deltaTime, prevEnemies)
	}
}
