// Package session 实现一局游戏的状态机：账户选择、模式选择、战斗、升级、暂停与结算。
//
// Session 不依赖渲染和窗口，只消费离散的输入事件（Input），
// 并导出绘制所需的数据（HUD、EntityView、ButtonView），因此可以在测试和命令行工具中无头运行。
package session

// State 游戏状态
type State int

const (
	StateAccountSelection State = iota // 选择或创建账户
	StateStartScreen                   // 选择模式 / 继续游戏
	StatePlaying                       // 战斗中（模拟时钟推进）
	StateUpgrading                     // 波次清空后的升级界面
	StatePaused                        // 暂停
	StateSkillTree                     // 技能树界面（从升级界面进入）
	StateGameOver                      // 玩家死亡
	StateGameWon                       // 通关
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateAccountSelection:
		return "AccountSelection"
	case StateStartScreen:
		return "StartScreen"
	case StatePlaying:
		return "Playing"
	case StateUpgrading:
		return "Upgrading"
	case StatePaused:
		return "Paused"
	case StateSkillTree:
		return "SkillTreeView"
	case StateGameOver:
		return "GameOver"
	case StateGameWon:
		return "GameWon"
	default:
		return "Unknown"
	}
}
