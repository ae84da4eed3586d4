package config

import (
	"fmt"

	"github.com/decker502/roguedash/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// UpgradeShopPath 升级商店配置的嵌入路径
const UpgradeShopPath = "data/upgrades.yaml"

// ShopItem 升级商店中的一个条目
type ShopItem struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Cost    int          `yaml:"cost"`
	Effects []StatEffect `yaml:"effects"`
}

// UpgradeShopConfig 升级商店配置文件结构
type UpgradeShopConfig struct {
	Items []ShopItem `yaml:"items"`
}

// LoadUpgradeShop 从嵌入文件加载升级商店配置
func LoadUpgradeShop(path string) (*UpgradeShopConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade shop %s: %w", path, err)
	}

	shop, err := ParseUpgradeShop(data)
	if err != nil {
		return nil, fmt.Errorf("invalid upgrade shop %s: %w", path, err)
	}
	return shop, nil
}

// ParseUpgradeShop 解析并校验升级商店配置
func ParseUpgradeShop(data []byte) (*UpgradeShopConfig, error) {
	var shop UpgradeShopConfig
	if err := yaml.Unmarshal(data, &shop); err != nil {
		return nil, fmt.Errorf("failed to parse upgrade shop YAML: %w", err)
	}

	if len(shop.Items) == 0 {
		return nil, fmt.Errorf("at least one shop item is required")
	}

	seen := make(map[string]bool, len(shop.Items))
	for _, item := range shop.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("shop item id cannot be empty")
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate shop item id %q", item.ID)
		}
		seen[item.ID] = true
		if item.Cost < 1 {
			return nil, fmt.Errorf("shop item %s: cost must be at least 1, got %d", item.ID, item.Cost)
		}
		if len(item.Effects) == 0 {
			return nil, fmt.Errorf("shop item %s: at least one effect is required", item.ID)
		}
		if err := validateEffects("shop item "+item.ID, item.Effects); err != nil {
			return nil, err
		}
	}

	return &shop, nil
}
