package scenes

import (
	"image/color"
	"os"
	"testing"

	"github.com/decker502/roguedash/pkg/config"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/session"
)

func newTestScene(t *testing.T) *GameScene {
	t.Helper()
	read := func(name string) []byte {
		data, err := os.ReadFile("../../data/" + name)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		return data
	}

	balance, err := config.ParseBalanceConfig(read("balance.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	skills, err := config.ParseSkillCatalog(read("skills.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	shop, err := config.ParseUpgradeShop(read("upgrades.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	storage := game.NewMemStorage()
	sess, err := session.New(session.Config{
		Balance:  balance,
		Skills:   skills,
		Shop:     shop,
		Accounts: game.NewAccountStore(storage),
		Saves:    game.NewRunSerializer(storage),
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewGameScene(sess)
}

func TestHoveredButton(t *testing.T) {
	buttons := []session.ButtonView{
		{ID: "a", X: 0, Y: 0, W: 100, H: 40, Enabled: true},
		{ID: "b", X: 0, Y: 50, W: 100, H: 40, Enabled: false},
		{ID: "c", X: 0, Y: 100, W: 100, H: 40, Enabled: true},
	}

	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"第一个按钮", 50, 20, "a"},
		{"不可用按钮", 50, 70, ""},
		{"第三个按钮", 10, 139, "c"},
		{"空白处", 200, 20, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hoveredButton(buttons, tt.x, tt.y); got != tt.want {
				t.Errorf("hoveredButton() = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

func TestEntityColor(t *testing.T) {
	if entityColor(session.EntityView{Kind: session.EntityPlayer}) != colorPlayer {
		t.Error("player color mismatch")
	}
	if entityColor(session.EntityView{Kind: session.EntityPlayer, Invulnerable: true}) != colorInvulnerable {
		t.Error("invulnerable player should be highlighted")
	}
	if entityColor(session.EntityView{Kind: session.EntityBoss}) != colorBoss {
		t.Error("boss color mismatch")
	}
	if entityColor(session.EntityView{Kind: session.EntityEnemy}) != colorEnemy {
		t.Error("enemy color mismatch")
	}
	full := entityColor(session.EntityView{Kind: session.EntityEnemy, Flash: 1})
	if full != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("fully flashed enemy = %v, 期望白色", full)
	}
	half := entityColor(session.EntityView{Kind: session.EntityEnemy, Flash: 0.5}).(color.RGBA)
	if half.G <= colorEnemy.G || half.G == 255 {
		t.Errorf("half flashed enemy = %v", half)
	}
}

func TestGameSceneDelegatesToSession(t *testing.T) {
	scene := newTestScene(t)

	if scene.ShouldQuit() {
		t.Error("new scene should not request quit")
	}
	// 账户选择界面没有进行中的一局，视为保存成功
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit() should succeed without a run")
	}
	if scene.Session().State() != session.StateAccountSelection {
		t.Errorf("initial state = %s", scene.Session().State())
	}
}
