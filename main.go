package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/roguedash/pkg/app"
	"github.com/decker502/roguedash/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	saveDir = flag.String("save-dir", "", "存档目录（默认使用系统数据目录）")
	account = flag.String("account", "", "启动时直接选择的账户，不存在则创建")
	mode    = flag.String("mode", "", "选择账户后直接开始的模式: normal, dungeon, endless, tutorial")
	seed    = flag.Int64("seed", 0, "敌人生成的随机种子（0 表示随机）")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		SaveDir: *saveDir,
		Account: *account,
		Mode:    *mode,
		Seed:    *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Rogue Dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
