package game

import (
	"fmt"
	"log"

	"github.com/decker502/roguedash/pkg/config"
)

// ApplyEffectsFunc 将属性修改应用到玩家
// 返回错误时整个购买操作回滚
type ApplyEffectsFunc func(effects []config.StatEffect) error

// SkillUpgrade 技能升级项（只读视图）
type SkillUpgrade struct {
	ID           string
	Name         string
	Description  string
	Cost         int
	Dependencies []string
	Effects      []config.StatEffect
	IsUnlocked   bool
}

// Skill 技能（只读视图）
type Skill struct {
	ID          string
	Name        string
	Description string
	Cost        int
	IsLearned   bool
	Level       int
	Upgrades    []SkillUpgrade
}

type skillNode struct {
	def      config.SkillDef
	learned  bool
	unlocked map[string]bool
	upgrades map[string]*config.SkillUpgradeDef
}

// level 技能等级等于已解锁升级项数量
func (n *skillNode) level() int {
	return len(n.unlocked)
}

// SkillTree 技能树
//
// 职责：
//   - 技能学习和升级项解锁的资格判断
//   - 扣除升级点并记录解锁，检查失败时不做任何修改
//   - 导出/恢复进度用于存档
//
// 技能树状态只在一局游戏内有效，新的一局调用 Reset。
type SkillTree struct {
	maxLevel int
	order    []string
	nodes    map[string]*skillNode
}

// NewSkillTree 根据目录创建技能树，目录不合法时返回错误
func NewSkillTree(catalog *config.SkillCatalog) (*SkillTree, error) {
	if catalog == nil {
		return nil, fmt.Errorf("skill catalog is nil")
	}
	if err := config.ValidateSkillCatalog(catalog); err != nil {
		return nil, fmt.Errorf("invalid skill catalog: %w", err)
	}

	t := &SkillTree{
		maxLevel: catalog.MaxLevel,
		nodes:    make(map[string]*skillNode, len(catalog.Skills)),
	}
	for _, def := range catalog.Skills {
		node := &skillNode{
			def:      def,
			unlocked: make(map[string]bool),
			upgrades: make(map[string]*config.SkillUpgradeDef, len(def.Upgrades)),
		}
		for i := range node.def.Upgrades {
			u := &node.def.Upgrades[i]
			node.upgrades[u.ID] = u
		}
		t.order = append(t.order, def.ID)
		t.nodes[def.ID] = node
	}
	return t, nil
}

// MaxLevel 返回单个技能的等级上限
func (t *SkillTree) MaxLevel() int {
	return t.maxLevel
}

// Reset 清空所有学习和解锁记录
func (t *SkillTree) Reset() {
	for _, node := range t.nodes {
		node.learned = false
		node.unlocked = make(map[string]bool)
	}
}

// Skills 按目录顺序返回所有技能
func (t *SkillTree) Skills() []Skill {
	skills := make([]Skill, 0, len(t.order))
	for _, id := range t.order {
		skills = append(skills, t.view(t.nodes[id]))
	}
	return skills
}

// Skill 查询单个技能
func (t *SkillTree) Skill(skillID string) (Skill, bool) {
	node, ok := t.nodes[skillID]
	if !ok {
		return Skill{}, false
	}
	return t.view(node), true
}

func (t *SkillTree) view(node *skillNode) Skill {
	s := Skill{
		ID:          node.def.ID,
		Name:        node.def.Name,
		Description: node.def.Description,
		Cost:        node.def.Cost,
		IsLearned:   node.learned,
		Level:       node.level(),
		Upgrades:    make([]SkillUpgrade, 0, len(node.def.Upgrades)),
	}
	for _, u := range node.def.Upgrades {
		s.Upgrades = append(s.Upgrades, SkillUpgrade{
			ID:           u.ID,
			Name:         u.Name,
			Description:  u.Description,
			Cost:         u.Cost,
			Dependencies: append([]string(nil), u.Dependencies...),
			Effects:      append([]config.StatEffect(nil), u.Effects...),
			IsUnlocked:   node.unlocked[u.ID],
		})
	}
	return s
}

// IsLearned 技能是否已学习
func (t *SkillTree) IsLearned(skillID string) bool {
	node, ok := t.nodes[skillID]
	return ok && node.learned
}

// IsUnlocked 升级项是否已解锁
func (t *SkillTree) IsUnlocked(skillID, upgradeID string) bool {
	node, ok := t.nodes[skillID]
	return ok && node.unlocked[upgradeID]
}

// HasUpgrade 在任意技能下查找已解锁的升级项
func (t *SkillTree) HasUpgrade(upgradeID string) bool {
	for _, node := range t.nodes {
		if node.unlocked[upgradeID] {
			return true
		}
	}
	return false
}

func (t *SkillTree) checkLearn(skillID string) (*skillNode, error) {
	node, ok := t.nodes[skillID]
	if !ok {
		return nil, fmt.Errorf("%w: skill %q", ErrNotFound, skillID)
	}
	if node.learned {
		return nil, fmt.Errorf("%w: skill %q already learned", ErrLocked, skillID)
	}
	return node, nil
}

// checkUnlock 检查结构条件（不含升级点）
func (t *SkillTree) checkUnlock(skillID, upgradeID string) (*skillNode, *config.SkillUpgradeDef, error) {
	node, ok := t.nodes[skillID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: skill %q", ErrNotFound, skillID)
	}
	upgrade, ok := node.upgrades[upgradeID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: upgrade %q of skill %q", ErrNotFound, upgradeID, skillID)
	}
	if !node.learned {
		return nil, nil, fmt.Errorf("%w: skill %q not learned", ErrLocked, skillID)
	}
	if node.unlocked[upgradeID] {
		return nil, nil, fmt.Errorf("%w: upgrade %q already unlocked", ErrLocked, upgradeID)
	}
	if node.level() >= t.maxLevel {
		return nil, nil, fmt.Errorf("%w: skill %q at max level %d", ErrLocked, skillID, t.maxLevel)
	}
	for _, dep := range upgrade.Dependencies {
		if !node.unlocked[dep] {
			return nil, nil, fmt.Errorf("%w: upgrade %q requires %q", ErrLocked, upgradeID, dep)
		}
	}
	return node, upgrade, nil
}

// CanLearn 检查是否可以学习技能
func (t *SkillTree) CanLearn(skillID string, points int) bool {
	node, err := t.checkLearn(skillID)
	return err == nil && points >= node.def.Cost
}

// CanUnlock 检查是否可以解锁升级项
func (t *SkillTree) CanUnlock(skillID, upgradeID string, points int) bool {
	_, upgrade, err := t.checkUnlock(skillID, upgradeID)
	return err == nil && points >= upgrade.Cost
}

// SpendAndLearn 扣除升级点并学习技能
func (t *SkillTree) SpendAndLearn(skillID string, points *int) error {
	node, err := t.checkLearn(skillID)
	if err != nil {
		return err
	}
	if *points < node.def.Cost {
		return fmt.Errorf("%w: skill %q costs %d, have %d", ErrInsufficientPoints, skillID, node.def.Cost, *points)
	}

	*points -= node.def.Cost
	node.learned = true
	log.Printf("[SkillTree] Learned skill %s (cost=%d, remaining=%d)", skillID, node.def.Cost, *points)
	return nil
}

// SpendAndUnlock 扣除升级点并解锁升级项
//
// 检查顺序：存在性 → 结构条件 → 升级点 → apply。
// apply 为 nil 时只记录解锁；apply 返回错误时不扣点也不解锁。
func (t *SkillTree) SpendAndUnlock(skillID, upgradeID string, points *int, apply ApplyEffectsFunc) error {
	node, upgrade, err := t.checkUnlock(skillID, upgradeID)
	if err != nil {
		return err
	}
	if *points < upgrade.Cost {
		return fmt.Errorf("%w: upgrade %q costs %d, have %d", ErrInsufficientPoints, upgradeID, upgrade.Cost, *points)
	}
	if apply != nil && len(upgrade.Effects) > 0 {
		if err := apply(upgrade.Effects); err != nil {
			return fmt.Errorf("failed to apply upgrade %q: %w", upgradeID, err)
		}
	}

	*points -= upgrade.Cost
	node.unlocked[upgradeID] = true
	log.Printf("[SkillTree] Unlocked %s/%s (level=%d, remaining=%d)", skillID, upgradeID, node.level(), *points)
	return nil
}

// Learn 直接学习技能，不扣点（用于恢复存档）
func (t *SkillTree) Learn(skillID string) error {
	node, err := t.checkLearn(skillID)
	if err != nil {
		return err
	}
	node.learned = true
	return nil
}

// Unlock 直接解锁升级项，不扣点（用于恢复存档）
func (t *SkillTree) Unlock(skillID, upgradeID string) error {
	node, _, err := t.checkUnlock(skillID, upgradeID)
	if err != nil {
		return err
	}
	node.unlocked[upgradeID] = true
	return nil
}

// Progress 导出当前进度
func (t *SkillTree) Progress() SkillProgress {
	var p SkillProgress
	for _, id := range t.order {
		node := t.nodes[id]
		if node.learned {
			p.Learned = append(p.Learned, id)
		}
		for _, u := range node.def.Upgrades {
			if node.unlocked[u.ID] {
				p.Unlocked = append(p.Unlocked, UnlockedUpgrade{Skill: id, Upgrade: u.ID})
			}
		}
	}
	p.normalize()
	return p
}

// Restore 用存档进度替换当前状态
//
// 进度中出现未知技能、依赖未满足或超过等级上限时返回 ErrCorruptData，
// 技能树保持调用前的状态。
func (t *SkillTree) Restore(p SkillProgress) error {
	backup := t.Progress()

	if err := t.restore(p); err != nil {
		t.Reset()
		if rerr := t.restore(backup); rerr != nil {
			log.Printf("[SkillTree] Warning: failed to roll back progress: %v", rerr)
		}
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

func (t *SkillTree) restore(p SkillProgress) error {
	t.Reset()
	for _, id := range p.Learned {
		if err := t.Learn(id); err != nil {
			return err
		}
	}

	// 按目录顺序解锁，保证依赖先于被依赖项
	wanted := make(map[UnlockedUpgrade]bool, len(p.Unlocked))
	for _, u := range p.Unlocked {
		if _, _, err := t.lookup(u.Skill, u.Upgrade); err != nil {
			return err
		}
		wanted[u] = true
	}
	for len(wanted) > 0 {
		progressed := false
		for _, id := range t.order {
			for _, u := range t.nodes[id].def.Upgrades {
				key := UnlockedUpgrade{Skill: id, Upgrade: u.ID}
				if !wanted[key] {
					continue
				}
				if _, _, err := t.checkUnlock(id, u.ID); err != nil {
					continue
				}
				t.nodes[id].unlocked[u.ID] = true
				delete(wanted, key)
				progressed = true
			}
		}
		if !progressed {
			for u := range wanted {
				_, _, err := t.checkUnlock(u.Skill, u.Upgrade)
				return err
			}
		}
	}
	return nil
}

func (t *SkillTree) lookup(skillID, upgradeID string) (*skillNode, *config.SkillUpgradeDef, error) {
	node, ok := t.nodes[skillID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: skill %q", ErrNotFound, skillID)
	}
	upgrade, ok := node.upgrades[upgradeID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: upgrade %q of skill %q", ErrNotFound, upgradeID, skillID)
	}
	return node, upgrade, nil
}
