// verify_progression 无窗口运行一局，验证关卡推进、商店和存档流程
//
// 用法：
//
//	go run ./cmd/verify_progression --mode tutorial --frames 20000
//	go run ./cmd/verify_progression --mode endless --save-dir /tmp/rd --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/embedded"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/session"
	"github.com/decker502/roguedash/pkg/systems"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	modeArg = flag.String("mode", "tutorial", "游戏模式: normal, dungeon, endless, tutorial")
	zen     = flag.Bool("zen", false, "开启禅模式")
	frames  = flag.Int("frames", 60*60*10, "最多模拟的帧数")
	seed    = flag.Int64("seed", 1, "随机种子")
	saveDir = flag.String("save-dir", "", "存档目录（为空则只在内存中）")
)

const frameTime = 1.0 / 60.0

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	// 从工作目录读取 data/，需在项目根目录运行
	embedded.Init(os.DirFS("."))
	sess, err := newSession()
	if err != nil {
		fmt.Printf("❌ 初始化失败: %v\n", err)
		os.Exit(1)
	}

	mode, ok := game.ParseMode(*modeArg)
	if !ok {
		fmt.Printf("❌ 未知模式: %s\n", *modeArg)
		os.Exit(1)
	}

	if err := sess.SelectAccount("bot"); err != nil {
		if err := sess.CreateAccount("bot"); err != nil {
			fmt.Printf("❌ 创建账户失败: %v\n", err)
			os.Exit(1)
		}
	}
	if err := sess.SetZen(*zen); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if err := sess.StartGame(mode); err != nil {
		fmt.Printf("❌ 开始游戏失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🎮 模式 %s (zen=%v)，种子 %d\n", mode, *zen, *seed)

	lastLevel := 0
	for frame := 0; frame < *frames; frame++ {
		switch sess.State() {
		case session.StatePlaying:
			sess.Update(frameTime, steer(sess))
		case session.StateUpgrading:
			shop(sess)
			hud := sess.HUD()
			if hud.Level != lastLevel {
				fmt.Printf("✅ 第 %d 关  生命 %d/%d  击杀 %d  升级点 %d\n",
					hud.Level, hud.Health, hud.MaxHealth, hud.Kills, hud.UpgradePoints)
				lastLevel = hud.Level
			}
			if err := sess.NextLevel(); err != nil {
				fmt.Printf("❌ %v\n", err)
				os.Exit(1)
			}
		case session.StateGameOver, session.StateGameWon:
			report(sess, frame)
			return
		default:
			fmt.Printf("❌ 意外的状态: %s\n", sess.State())
			os.Exit(1)
		}
	}

	fmt.Printf("⏱  达到帧数上限，保存进度\n")
	if !sess.SaveOnExit() {
		fmt.Printf("❌ 保存失败\n")
		os.Exit(1)
	}
	report(sess, *frames)
}

func newSession() (*session.Session, error) {
	balance, err := config.LoadBalanceConfig(config.BalanceConfigPath)
	if err != nil {
		return nil, err
	}
	skills, err := config.LoadSkillCatalog(config.SkillCatalogPath)
	if err != nil {
		return nil, err
	}
	shopCfg, err := config.LoadUpgradeShop(config.UpgradeShopPath)
	if err != nil {
		return nil, err
	}

	var storage game.Storage = game.NewMemStorage()
	if *saveDir != "" {
		dir, err := game.NewDirStorage(*saveDir)
		if err != nil {
			return nil, err
		}
		storage = dir
	}

	return session.New(session.Config{
		Balance:  balance,
		Skills:   skills,
		Shop:     shopCfg,
		Accounts: game.NewAccountStore(storage),
		Saves:    game.NewRunSerializer(storage),
		Seed:     *seed,
	})
}

// steer 绕着最近的敌人逃跑，敌人贴近时冲刺
func steer(sess *session.Session) session.Input {
	em := sess.World()
	playerID, ok := systems.FindPlayer(em)
	if !ok {
		return session.Input{}
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)

	enemyID, ok := systems.NearestEnemy(em, pos.X, pos.Y)
	if !ok {
		return session.Input{}
	}
	epos, _ := ecs.GetComponent[*components.PositionComponent](em, enemyID)
	dx, dy := pos.X-epos.X, pos.Y-epos.Y

	// 远离与切线方向合成，避免被逼到墙角
	in := session.Input{MoveX: dx - dy, MoveY: dy + dx}
	in.Dash = math.Hypot(dx, dy) < 60
	return in
}

// shop 依次购买买得起的商品
func shop(sess *session.Session) {
	for _, item := range sess.Shop().Items() {
		for sess.Shop().CanAfford(item.ID, sess.Run().UpgradePoints) {
			if err := sess.Purchase(item.ID); err != nil {
				break
			}
			fmt.Printf("   🛒 %s\n", item.Name)
		}
	}
}

func report(sess *session.Session, frame int) {
	hud := sess.HUD()
	fmt.Printf("\n📊 结果: %s  (第 %d 帧, 模拟 %.1f 秒)\n", sess.State(), frame, sess.Now())
	fmt.Printf("   关卡 %d  击杀 %d  最高分 %d\n", hud.Level, hud.Kills, hud.Highscore)
}
