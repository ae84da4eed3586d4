package systems

import (
	"os"
	"testing"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/entities"
)

// upgradeSet 测试用的技能升级集合
type upgradeSet map[string]bool

func (u upgradeSet) HasUpgrade(id string) bool { return u[id] }

func loadTestBalance(t *testing.T) *config.BalanceConfig {
	t.Helper()
	data, err := os.ReadFile("../../data/balance.yaml")
	if err != nil {
		t.Fatalf("failed to read balance.yaml: %v", err)
	}
	cfg, err := config.ParseBalanceConfig(data)
	if err != nil {
		t.Fatalf("ParseBalanceConfig() error: %v", err)
	}
	return cfg
}

// newTestWorld 创建只有一个玩家（屏幕中心）的世界
func newTestWorld(t *testing.T) (*ecs.EntityManager, *config.BalanceConfig, ecs.EntityID) {
	t.Helper()
	cfg := loadTestBalance(t)
	em := ecs.NewEntityManager()
	id, err := entities.NewPlayerEntity(em, cfg, entities.DefaultPlayerSnapshot(cfg), 0)
	if err != nil {
		t.Fatal(err)
	}
	return em, cfg, id
}

func addEnemy(t *testing.T, em *ecs.EntityManager, cfg *config.BalanceConfig, x, y float64, health int) ecs.EntityID {
	t.Helper()
	stats := entities.ComputeEnemyStats(cfg, components.EnemyNormal, 1, false)
	stats.Health = health
	id, err := entities.NewEnemyEntity(em, components.EnemyNormal, stats, x, y)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func playerOf(em *ecs.EntityManager, id ecs.EntityID) (*components.PlayerComponent, *components.PositionComponent, *components.HealthComponent) {
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return player, pos, health
}
