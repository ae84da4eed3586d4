package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景接口（账户选择、游戏主循环等）
// 同一时间只有一个场景在更新和绘制
type Scene interface {
	// Update 推进场景逻辑，deltaTime 单位为秒
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：窗口关闭时保存进度
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会退出）
	SaveOnExit() bool
}

// Quitter 可选接口：场景请求退出程序（例如"保存并退出"）
type Quitter interface {
	ShouldQuit() bool
}
