package session

// ClickButton 点击使用的按键
type ClickButton int

const (
	// ClickPrimary 鼠标左键或触摸
	ClickPrimary ClickButton = iota
	// ClickSecondary 鼠标右键
	ClickSecondary
)

// Click 一次点击或触摸（逻辑屏幕坐标）
type Click struct {
	X, Y   float64
	Button ClickButton
}

// Input 一帧内的离散输入
// 由表现层从键盘、鼠标、触摸收集，按键绑定不属于 Session
type Input struct {
	MoveX, MoveY float64 // 按住的方向（未归一化，零向量表示静止）
	Dash         bool
	Pause        bool
	Confirm      bool // 回车：创建账户 / 下一关 / 重新开始
	Cancel       bool // Esc：关闭技能树 / 继续游戏
	Backspace    bool
	Text         []rune // 本帧输入的字符（账户名）
	Clicks       []Click
}
