package entities

import (
	"os"
	"testing"

	"github.com/decker502/roguedash/pkg/config"
)

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
