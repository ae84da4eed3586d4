package systems

import (
	"math"
	"testing"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
)

func TestNearestEnemyTieBreak(t *testing.T) {
	em, cfg, _ := newTestWorld(t)

	if _, ok := NearestEnemy(em, 0, 0); ok {
		t.Fatal("NearestEnemy with no enemies should fail")
	}

	first := addEnemy(t, em, cfg, 740, 360, 10)
	addEnemy(t, em, cfg, 540, 360, 10)
	got, ok := NearestEnemy(em, 640, 360)
	if !ok || got != first {
		t.Errorf("NearestEnemy = %d, 期望 lowest id %d", got, first)
	}

	closer := addEnemy(t, em, cfg, 650, 360, 10)
	if got, _ := NearestEnemy(em, 640, 360); got != closer {
		t.Errorf("NearestEnemy = %d, 期望 %d", got, closer)
	}

	em.DestroyEntity(closer)
	if got, _ := NearestEnemy(em, 640, 360); got != first {
		t.Errorf("destroyed enemy should be ignored, got %d", got)
	}
}

func TestCombatSystemCooldown(t *testing.T) {
	em, cfg, id := newTestWorld(t)
	sys := NewCombatSystem(em, cfg)
	player, _, _ := playerOf(em, id)

	if fired := sys.Update(1.0); fired != 0 {
		t.Fatalf("fired %d without enemies", fired)
	}
	if player.LastShotAt != 0 {
		t.Error("cooldown should not reset without a target")
	}

	addEnemy(t, em, cfg, 900, 360, 10)
	if fired := sys.Update(1.0); fired != 1 {
		t.Fatalf("fired = %d, 期望 1", fired)
	}
	if fired := sys.Update(1.4); fired != 0 {
		t.Errorf("fired again before AttackSpeed elapsed")
	}
	if fired := sys.Update(1.5); fired != 1 {
		t.Errorf("should fire again after 500ms")
	}
}

func TestCombatSystemSpread(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 1},
		{2, 1},
		{3, 3},
		{5, 5},
	}

	for _, tt := range tests {
		em, cfg, id := newTestWorld(t)
		player, _, _ := playerOf(em, id)
		player.ProjectileCount = tt.count
		addEnemy(t, em, cfg, 900, 360, 10)

		if fired := NewCombatSystem(em, cfg).Update(1.0); fired != tt.want {
			t.Errorf("ProjectileCount %d fired %d, 期望 %d", tt.count, fired, tt.want)
		}
	}
}

func TestCombatSystemSpreadAngles(t *testing.T) {
	em, cfg, id := newTestWorld(t)
	player, _, _ := playerOf(em, id)
	player.ProjectileCount = 3
	addEnemy(t, em, cfg, 900, 360, 10)

	NewCombatSystem(em, cfg).Update(1.0)

	var angles []float64
	for _, pid := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, pid)
		angles = append(angles, math.Atan2(vel.VY, vel.VX)*180/math.Pi)
	}
	want := []float64{0, 15, -15}
	if len(angles) != len(want) {
		t.Fatalf("angles = %v", angles)
	}
	for i := range want {
		if math.Abs(angles[i]-want[i]) > 1e-6 {
			t.Errorf("projectile %d angle = %v, 期望 %v", i, angles[i], want[i])
		}
	}
}
