package components

// DashComponent 冲刺技能的充能状态
//
// 每一个缺失的充能都有自己独立的恢复时间点，记录在 RechargeAt 中（升序）。
// 不变量：Charges + len(RechargeAt) == MaxCharges
type DashComponent struct {
	MaxCharges int
	Charges    int
	Cooldown   float64   // 单次充能恢复时间（秒）
	Distance   float64   // 位移距离（像素）
	RechargeAt []float64 // 各缺失充能的恢复时间点（模拟时间，秒）
}
