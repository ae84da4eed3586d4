// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/scenes"
	"github.com/decker502/roguedash/pkg/session"
	"github.com/decker502/roguedash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "roguedash"

// savesObject gdata 中存放账户表和存档的对象名
const savesObject = "saves"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SaveDir 存档目录，为空时使用 gdata 平台存储
	SaveDir string
	// Account 启动时直接选择（不存在则创建）的账户
	Account string
	// Mode 选择账户后直接开始的模式，为空则停在开始界面
	Mode string
	// Seed 敌人生成的随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	session                  *session.Session
	settings                 *game.SettingsManager
	width, height            int
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	balance, err := config.LoadBalanceConfig(config.BalanceConfigPath)
	if err != nil {
		return nil, fmt.Errorf("数值配置加载失败: %w", err)
	}
	skills, err := config.LoadSkillCatalog(config.SkillCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("技能树配置加载失败: %w", err)
	}
	shop, err := config.LoadUpgradeShop(config.UpgradeShopPath)
	if err != nil {
		return nil, fmt.Errorf("升级商店配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %d modes, %d skills, %d shop items",
		len(balance.Modes), len(skills.Skills), len(shop.Items))

	gdataManager := openGdata()
	storage, err := openStorage(cfg.SaveDir, gdataManager)
	if err != nil {
		return nil, err
	}
	settings := game.NewSettingsManager(gdataManager)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := session.New(session.Config{
		Balance:  balance,
		Skills:   skills,
		Shop:     shop,
		Accounts: game.NewAccountStore(storage),
		Saves:    game.NewRunSerializer(storage),
		Settings: settings,
		Seed:     seed,
	})
	if err != nil {
		return nil, fmt.Errorf("会话初始化失败: %w", err)
	}

	if err := quickStart(sess, cfg.Account, cfg.Mode); err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(sess))

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		session:      sess,
		settings:     settings,
		width:        balance.Screen.Width,
		height:       balance.Screen.Height,
		verbose:      cfg.Verbose,
	}, nil
}

// openGdata 打开 gdata 存储；失败时返回 nil，偏好设置降级为仅内存
func openGdata() *gdata.Manager {
	if err := utils.EnsureStorageDir(savesObject); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, preferences will not persist: %v", err)
		return nil
	}
	return manager
}

// openStorage 选择存档后端：显式目录优先，其次 gdata
func openStorage(saveDir string, manager *gdata.Manager) (game.Storage, error) {
	if saveDir != "" {
		storage, err := game.NewDirStorage(saveDir)
		if err != nil {
			return nil, fmt.Errorf("存档目录不可用: %w", err)
		}
		log.Printf("[App] Using save directory %s", storage.Dir())
		return storage, nil
	}
	if manager == nil {
		return nil, fmt.Errorf("no save storage available, use --save-dir")
	}
	return game.NewGdataStorage(manager, savesObject), nil
}

// quickStart 按命令行参数跳过账户选择和开始界面
func quickStart(sess *session.Session, account, mode string) error {
	if account == "" {
		return nil
	}
	if err := sess.SelectAccount(account); err != nil {
		if err := sess.CreateAccount(account); err != nil {
			return fmt.Errorf("账户 %q 不可用: %w", account, err)
		}
	}
	if mode == "" {
		return nil
	}
	m, ok := game.ParseMode(mode)
	if !ok {
		return fmt.Errorf("未知模式 %q，可选: %v", mode, game.Modes())
	}
	return sess.StartGame(m)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.ShouldQuit() {
		log.Printf("[App] Quit requested")
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save preferences: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// ScreenSize 返回逻辑屏幕尺寸，用于设置初始窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.width, a.height
}

// SaveOnExit 在程序退出前保存进行中的一局
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// Session 返回游戏会话
func (a *App) Session() *session.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
