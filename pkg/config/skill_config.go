package config

import (
	"fmt"

	"github.com/decker502/roguedash/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SkillCatalogPath 技能树目录的嵌入路径
const SkillCatalogPath = "data/skills.yaml"

// SkillUpgradeDef 技能升级项定义
type SkillUpgradeDef struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Cost         int          `yaml:"cost"`
	Dependencies []string     `yaml:"dependencies"`
	Effects      []StatEffect `yaml:"effects"` // 解锁时立即生效的属性修改
}

// SkillDef 技能定义
type SkillDef struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cost        int               `yaml:"cost"`
	Upgrades    []SkillUpgradeDef `yaml:"upgrades"`
}

// SkillCatalog 技能树目录文件结构
type SkillCatalog struct {
	MaxLevel int        `yaml:"maxLevel"` // 单个技能最多可解锁的升级数
	Skills   []SkillDef `yaml:"skills"`
}

// LoadSkillCatalog 从嵌入文件加载技能树目录
func LoadSkillCatalog(path string) (*SkillCatalog, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill catalog %s: %w", path, err)
	}

	catalog, err := ParseSkillCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid skill catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseSkillCatalog 解析并校验技能树目录
func ParseSkillCatalog(data []byte) (*SkillCatalog, error) {
	var catalog SkillCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse skill YAML: %w", err)
	}

	if err := ValidateSkillCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// ValidateSkillCatalog 验证技能树目录
//
// 规则：
//   - 技能 ID 全局唯一，升级项 ID 全局唯一
//   - 依赖只能指向同一技能内的升级项
//   - 每个技能的升级依赖图不能有环
//   - 费用不能为负
func ValidateSkillCatalog(catalog *SkillCatalog) error {
	if catalog.MaxLevel < 1 {
		return fmt.Errorf("maxLevel must be at least 1, got %d", catalog.MaxLevel)
	}
	if len(catalog.Skills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}

	skillIDs := make(map[string]bool)
	upgradeIDs := make(map[string]bool)

	for _, skill := range catalog.Skills {
		if skill.ID == "" {
			return fmt.Errorf("skill id cannot be empty")
		}
		if skillIDs[skill.ID] {
			return fmt.Errorf("duplicate skill id %q", skill.ID)
		}
		skillIDs[skill.ID] = true

		if skill.Cost < 0 {
			return fmt.Errorf("skill %s: cost cannot be negative, got %d", skill.ID, skill.Cost)
		}

		local := make(map[string]SkillUpgradeDef, len(skill.Upgrades))
		for _, up := range skill.Upgrades {
			if up.ID == "" {
				return fmt.Errorf("skill %s: upgrade id cannot be empty", skill.ID)
			}
			if upgradeIDs[up.ID] {
				return fmt.Errorf("duplicate upgrade id %q", up.ID)
			}
			upgradeIDs[up.ID] = true
			if up.Cost < 0 {
				return fmt.Errorf("upgrade %s: cost cannot be negative, got %d", up.ID, up.Cost)
			}
			if err := validateEffects("upgrade "+up.ID, up.Effects); err != nil {
				return err
			}
			local[up.ID] = up
		}

		for _, up := range skill.Upgrades {
			for _, dep := range up.Dependencies {
				if _, ok := local[dep]; !ok {
					return fmt.Errorf("upgrade %s: dependency %q is not an upgrade of skill %s", up.ID, dep, skill.ID)
				}
			}
		}

		if cycle := findCycle(skill.Upgrades); cycle != "" {
			return fmt.Errorf("skill %s: dependency cycle through upgrade %q", skill.ID, cycle)
		}
	}

	return nil
}

// findCycle 使用三色 DFS 检测依赖环，返回环上的一个升级项 ID
func findCycle(upgrades []SkillUpgradeDef) string {
	const (
		white = iota
		grey
		black
	)

	deps := make(map[string][]string, len(upgrades))
	for _, up := range upgrades {
		deps[up.ID] = up.Dependencies
	}

	color := make(map[string]int, len(upgrades))
	var visit func(id string) string
	visit = func(id string) string {
		color[id] = grey
		for _, dep := range deps[id] {
			switch color[dep] {
			case grey:
				return dep
			case white:
				if c := visit(dep); c != "" {
					return c
				}
			}
		}
		color[id] = black
		return ""
	}

	// 按定义顺序遍历，保证报错稳定
	for _, up := range upgrades {
		if color[up.ID] == white {
			if c := visit(up.ID); c != "" {
				return c
			}
		}
	}
	return ""
}
