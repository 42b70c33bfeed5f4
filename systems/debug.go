package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hitbox and collision box in the contact space
// and prints the tick counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	clock := GetOrCreateClock(ecs)
	if !clock.Debug {
		return
	}

	cam, off, ok := drawContext(ecs)
	if !ok {
		return
	}

	hit := premultiply(cfg.RGBA(cfg.UI.DebugHitboxColor))
	col := premultiply(cfg.RGBA(cfg.UI.DebugColboxColor))
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !cam.Visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			b, ok := obj.Data.(*physics.Body)
			if !ok || !b.Active() {
				continue
			}
			outline(screen, obj.X+off.X, obj.Y+off.Y, obj.W, obj.H, hit)
			x, y, w, h := b.CollisionRect()
			outline(screen, x+off.X, y+off.Y, w, h, col)
		}
	}

	items := 0
	tags.Item.Each(ecs.World, func(e *donburi.Entry) { items++ })

	var effects int
	if entry, ok := components.Stage.First(ecs.World); ok {
		effects = components.Stage.Get(entry).ActiveEffects()
	}

	msg := fmt.Sprintf("t%d pool%d fx%d\ncam %s look %.0f",
		clock.Ticks, items, effects, fmtVec(cam.Pos), cam.Look.X)
	text.Draw(screen, msg, fonts.Debug.Get(), 2, screen.Bounds().Dy()-14, cfg.White)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x)+0.5, float32(y)+0.5, float32(w)-1, float32(h)-1, 1, c, false)
}

func fmtVec(v gamemath.Vector) string {
	return fmt.Sprintf("%.0f,%.0f", v.X, v.Y)
}
