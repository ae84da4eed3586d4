package systems

import (
	"testing"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/entities"
)

func TestProjectileSystemMovesAndCulls(t *testing.T) {
	em, cfg, _ := newTestWorld(t)
	sys := NewProjectileSystem(em, cfg)

	id, err := entities.NewProjectileEntity(em, cfg, 1200, 100, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	sys.Update(0.1)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 1260 {
		t.Errorf("projectile X = %v, 期望 1260", pos.X)
	}
	if !em.IsAlive(id) {
		t.Fatal("projectile still on screen should stay alive")
	}

	sys.Update(0.1)
	if em.IsAlive(id) {
		t.Error("projectile off screen should be destroyed")
	}
}

func TestEnemySeekSystem(t *testing.T) {
	em, cfg, _ := newTestWorld(t)
	enemy := addEnemy(t, em, cfg, 640-120, 360, 10)

	NewEnemySeekSystem(em).Update(0.5)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, enemy)
	if pos.X != 580 || pos.Y != 360 {
		t.Errorf("enemy at (%v, %v), 期望 (580, 360)", pos.X, pos.Y)
	}

	NewEnemySeekSystem(em).Update(10)
	if pos.X != 640 {
		t.Errorf("enemy should stop on the player, X = %v", pos.X)
	}
}
