package components

// PositionComponent 实体中心点的世界坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（像素/秒）
// 子弹在创建时确定速度；敌人每帧根据玩家位置重新计算
type VelocityComponent struct {
	VX float64
	VY float64
}
