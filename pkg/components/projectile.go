package components

// ProjectileComponent 玩家发射的子弹
type ProjectileComponent struct {
	Damage int
}
