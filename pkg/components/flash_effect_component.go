package components

// FlashEffectComponent 受击闪白效果
// 敌人被子弹或冲刺路径击中但未死亡时添加，持续时间结束后移除
type FlashEffectComponent struct {
	Duration float64 // 闪烁持续时间（秒）
	Elapsed  float64 // 已经过的时间（秒）
}

// Intensity 返回当前闪白强度 ∈ [0, 1]，随时间线性衰减
func (f *FlashEffectComponent) Intensity() float64 {
	if f.Duration <= 0 || f.Elapsed >= f.Duration {
		return 0
	}
	return 1 - f.Elapsed/f.Duration
}
