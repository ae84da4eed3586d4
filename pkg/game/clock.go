package game

// Clock 模拟时钟（秒）
//
// 只在游戏进行中推进，暂停、升级界面等状态下冻结，
// 因此攻击冷却、冲刺充能等计时在暂停前后保持不变。
type Clock struct {
	now float64
}

// Advance 推进时钟，负值被忽略
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

// Now 返回当前模拟时间
func (c *Clock) Now() float64 {
	return c.now
}

// Reset 将时钟归零（新的一局）
func (c *Clock) Reset() {
	c.now = 0
}
