package components

// EnemyKind 敌人种类
// Boss 与教学 Boss 和普通敌人共用同一套移动与碰撞逻辑，只在数值推导上不同
type EnemyKind int

const (
	// EnemyNormal 普通敌人
	EnemyNormal EnemyKind = iota
	// EnemyBoss 无尽模式 Boss：20 倍血量，体型更大
	EnemyBoss
	// EnemyTutorialBoss 教学 Boss：固定低血量
	EnemyTutorialBoss
)

// String 返回敌人种类的名称
func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyBoss:
		return "boss"
	case EnemyTutorialBoss:
		return "tutorial_boss"
	default:
		return "unknown"
	}
}

// EnemyComponent 敌人属性
type EnemyComponent struct {
	Kind   EnemyKind
	Speed  float64 // 追击速度（像素/秒）
	Damage int     // 接触玩家时造成的伤害
}
