package components

// PlayerComponent 玩家专属属性
type PlayerComponent struct {
	Speed           float64 // 移动速度（像素/秒）
	AttackSpeed     float64 // 攻击间隔（毫秒），数值越小射速越快
	ProjectileCount int     // 每次射击的子弹数量
	KillCount       int     // 本局击杀数，只增不减

	LastShotAt        float64 // 上次射击的模拟时间（秒）
	InvulnerableUntil float64 // 无敌截止时间（秒），霸体宗升级使用
	MoveX, MoveY      float64 // 当前帧的输入方向（未归一化）
}
