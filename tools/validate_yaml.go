package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/decker502/roguedash/pkg/config"
	"gopkg.in/yaml.v3"
)

// 校验 data/ 下的全部配置文件
func main() {
	failed := 0

	balanceData := mustRead("data/balance.yaml")
	balance, err := config.ParseBalanceConfig(balanceData)
	if err != nil {
		fmt.Printf("❌ balance.yaml: %v\n", err)
		failed++
	} else {
		modes := make([]string, 0, len(balance.Modes))
		for name := range balance.Modes {
			modes = append(modes, name)
		}
		sort.Strings(modes)
		fmt.Printf("✅ balance.yaml: 屏幕 %dx%d，模式 %v\n", balance.Screen.Width, balance.Screen.Height, modes)
	}

	skills, err := config.ParseSkillCatalog(mustRead("data/skills.yaml"))
	if err != nil {
		fmt.Printf("❌ skills.yaml: %v\n", err)
		failed++
	} else {
		upgrades := 0
		for _, s := range skills.Skills {
			upgrades += len(s.Upgrades)
		}
		fmt.Printf("✅ skills.yaml: %d 个技能，%d 个升级项，等级上限 %d\n", len(skills.Skills), upgrades, skills.MaxLevel)
	}

	shop, err := config.ParseUpgradeShop(mustRead("data/upgrades.yaml"))
	if err != nil {
		fmt.Printf("❌ upgrades.yaml: %v\n", err)
		failed++
	} else {
		fmt.Printf("✅ upgrades.yaml: %d 个商品\n", len(shop.Items))
	}

	// 未知字段检查：严格解码一次，提示拼写错误
	var strict config.BalanceConfig
	dec := yaml.NewDecoder(bytes.NewReader(balanceData))
	dec.KnownFields(true)
	if err := dec.Decode(&strict); err != nil {
		fmt.Printf("❌ balance.yaml 含有未知字段: %v\n", err)
		failed++
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件校验失败\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有配置文件校验通过\n")
}

func mustRead(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	return data
}
