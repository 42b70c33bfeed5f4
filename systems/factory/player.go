package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). Controls are
// attached by the object system each tick.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body, p := behaviors.NewPlayer(x, y, nil)
	p.OnHurt = func() {
		if c, ok := components.Camera.First(ecs.World); ok {
			components.Camera.Get(c).Shake(cfg.ScreenShake.HurtIntensity, cfg.ScreenShake.HurtDuration)
		}
	}
	components.Player.SetValue(player, components.PlayerData{Player: p})
	setObject(ecs, player, body, tags.ResolvPlayer)

	return player
}
