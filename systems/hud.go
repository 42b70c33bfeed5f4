package systems

import (
	"fmt"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudHeartSize = 5

// DrawHUD renders health, coins and lives along the top edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	m := float32(cfg.UI.HUDMargin)

	heart := cfg.RGBA(cfg.UI.HeartColor)
	empty := cfg.RGBA(cfg.UI.DecorColor)
	for i := range cfg.Player.MaxHealth {
		c := empty
		if i < p.Health {
			c = heart
		}
		x := m + float32(i*(hudHeartSize+1))
		vector.FillRect(screen, x, m, hudHeartSize, hudHeartSize, c, false)
	}

	face := fonts.HUD.Get()
	col := cfg.RGBA(cfg.UI.HUDTextColor)
	line := int(m) + int(cfg.UI.HUDFontSize) + hudHeartSize
	text.Draw(screen, fmt.Sprintf("x%d", p.Coins), face, int(m), line, col)

	lives := fmt.Sprintf("L%d", p.Lives)
	x := screen.Bounds().Dx() - int(m) - text.BoundString(face, lives).Dx()
	text.Draw(screen, lives, face, x, line, col)
}
