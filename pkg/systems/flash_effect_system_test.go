package systems

import (
	"testing"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
)

func TestDamageStartsFlash(t *testing.T) {
	em, cfg, _ := newTestWorld(t)
	enemy := addEnemy(t, em, cfg, 100, 100, 30)

	if damageEnemy(em, enemy, 10) {
		t.Fatal("enemy with 30 health should survive 10 damage")
	}
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, enemy)
	if !ok {
		t.Fatal("damaged enemy should flash")
	}
	if flash.Intensity() != 1 {
		t.Errorf("Intensity() = %v, want 1", flash.Intensity())
	}

	fs := NewFlashEffectSystem(em)
	fs.Update(HitFlashDuration / 2)
	if got := flash.Intensity(); got < 0.49 || got > 0.51 {
		t.Errorf("Intensity() = %v, 期望约 0.5", got)
	}

	// 再次受击重新计时
	damageEnemy(em, enemy, 10)
	if flash.Elapsed != 0 {
		t.Errorf("Elapsed = %v after second hit, want 0", flash.Elapsed)
	}

	fs.Update(HitFlashDuration)
	if ecs.HasComponent[*components.FlashEffectComponent](em, enemy) {
		t.Error("flash should be removed after its duration")
	}
}

func TestKilledEnemyDoesNotFlash(t *testing.T) {
	em, cfg, _ := newTestWorld(t)
	enemy := addEnemy(t, em, cfg, 100, 100, 10)

	if !damageEnemy(em, enemy, 10) {
		t.Fatal("enemy should die")
	}
	if ecs.HasComponent[*components.FlashEffectComponent](em, enemy) {
		t.Error("dead enemy should not get a flash")
	}
}
