package game

import (
	"fmt"
	"log"

	"github.com/decker502/roguedash/pkg/config"
)

// UpgradeShop 升级界面中的属性商店
type UpgradeShop struct {
	items []config.ShopItem
}

// NewUpgradeShop 创建属性商店
func NewUpgradeShop(cfg *config.UpgradeShopConfig) *UpgradeShop {
	if cfg == nil {
		return &UpgradeShop{}
	}
	return &UpgradeShop{items: append([]config.ShopItem(nil), cfg.Items...)}
}

// Items 按配置顺序返回商品
func (s *UpgradeShop) Items() []config.ShopItem {
	return s.items
}

// Item 查询商品
func (s *UpgradeShop) Item(id string) (config.ShopItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return config.ShopItem{}, false
}

// CanAfford 升级点是否足够购买
func (s *UpgradeShop) CanAfford(id string, points int) bool {
	item, ok := s.Item(id)
	return ok && points >= item.Cost
}

// Purchase 购买商品
//
// 升级点不足或 apply 失败时不做任何修改。
func (s *UpgradeShop) Purchase(id string, points *int, apply ApplyEffectsFunc) error {
	item, ok := s.Item(id)
	if !ok {
		return fmt.Errorf("%w: shop item %q", ErrNotFound, id)
	}
	if *points < item.Cost {
		return fmt.Errorf("%w: %q costs %d, have %d", ErrInsufficientPoints, id, item.Cost, *points)
	}
	if apply != nil {
		if err := apply(item.Effects); err != nil {
			return fmt.Errorf("failed to apply %q: %w", id, err)
		}
	}

	*points -= item.Cost
	log.Printf("[UpgradeShop] Purchased %s (cost=%d, remaining=%d)", id, item.Cost, *points)
	return nil
}
