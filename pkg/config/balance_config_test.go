package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readDataFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "data", name))
	if err != nil {
		t.Fatalf("Failed to read data/%s: %v", name, err)
	}
	return data
}

// TestParseBalanceConfig_ShippedFile 验证仓库内的数值配置可以通过校验
func TestParseBalanceConfig_ShippedFile(t *testing.T) {
	cfg, err := ParseBalanceConfig(readDataFile(t, "balance.yaml"))
	if err != nil {
		t.Fatalf("ParseBalanceConfig failed: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen: expected 1280x720, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Player.MaxHealth != 100 {
		t.Errorf("player maxHealth: expected 100, got %d", cfg.Player.MaxHealth)
	}
	if cfg.Player.Dash.MaxCharges != 3 || cfg.Player.Dash.InitialCharges != 1 {
		t.Errorf("dash charges: expected 1/3, got %d/%d", cfg.Player.Dash.InitialCharges, cfg.Player.Dash.MaxCharges)
	}
	if cfg.Progression.KillsPerPoint != 10 {
		t.Errorf("killsPerPoint: expected 10, got %d", cfg.Progression.KillsPerPoint)
	}

	for _, mode := range []string{"normal", "dungeon", "endless", "tutorial"} {
		if _, ok := cfg.GetMode(mode); !ok {
			t.Errorf("mode %s missing", mode)
		}
	}

	normal, _ := cfg.GetMode("normal")
	if normal.LevelCap != 20 {
		t.Errorf("normal levelCap: expected 20, got %d", normal.LevelCap)
	}
	endless, _ := cfg.GetMode("endless")
	if endless.LevelCap != 0 || endless.BossEvery != 20 || !endless.SpeedScaling {
		t.Errorf("endless mode rules unexpected: %+v", endless)
	}
}

func TestParseBalanceConfig_Invalid(t *testing.T) {
	base := string(readDataFile(t, "balance.yaml"))

	tests := []struct {
		name    string
		old     string
		new     string
		wantErr string
	}{
		{"零宽屏幕", "width: 1280", "width: 0", "screen size"},
		{"充能超过上限", "initialCharges: 1", "initialCharges: 4", "initialCharges"},
		{"击杀点数为零", "killsPerPoint: 10", "killsPerPoint: 0", "killsPerPoint"},
		{"禅模式批次为零", "zenBatch: 5", "zenBatch: 0", "zenBatch"},
		{"负的关卡上限", "levelCap: 20", "levelCap: -1", "levelCap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(base, tt.old, tt.new, 1)
			if data == base {
				t.Fatalf("replacement %q not found in balance.yaml", tt.old)
			}
			_, err := ParseBalanceConfig([]byte(data))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseBalanceConfig_BadYAML(t *testing.T) {
	if _, err := ParseBalanceConfig([]byte("screen: [unterminated")); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}

func TestParseUpgradeShop(t *testing.T) {
	shop, err := ParseUpgradeShop(readDataFile(t, "upgrades.yaml"))
	if err != nil {
		t.Fatalf("ParseUpgradeShop failed: %v", err)
	}
	if len(shop.Items) != 5 {
		t.Fatalf("Expected 5 shop items, got %d", len(shop.Items))
	}
	if shop.Items[4].ID != "dash_charge" || shop.Items[4].Cost != 2 {
		t.Errorf("dash_charge item unexpected: %+v", shop.Items[4])
	}

	bad := []struct {
		name string
		yaml string
	}{
		{"empty", "items: []"},
		{"unknown stat", "items:\n  - id: x\n    cost: 1\n    effects:\n      - stat: luck\n        add: 1\n"},
		{"zero cost", "items:\n  - id: x\n    cost: 0\n    effects:\n      - stat: speed\n        add: 1\n"},
		{"no-op effect", "items:\n  - id: x\n    cost: 1\n    effects:\n      - stat: speed\n"},
		{"duplicate", "items:\n  - id: x\n    cost: 1\n    effects:\n      - stat: speed\n        add: 1\n  - id: x\n    cost: 1\n    effects:\n      - stat: speed\n        add: 1\n"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseUpgradeShop([]byte(tt.yaml)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
