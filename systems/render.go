package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/camera"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/stage"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// drawContext returns the camera and the world-to-screen offset.
func drawContext(ecs *ecs.ECS) (*camera.Camera, gamemath.Vector, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, gamemath.Vector{}, false // No camera yet
	}
	cam := components.Camera.Get(cameraEntry)
	return cam, cam.DrawOffset(), true
}

// DrawStage renders the background and base layers as flat tiles.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.RGBA(cfg.C.Background))

	cam, off, ok := drawContext(ecs)
	if !ok {
		return
	}
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	st := components.Stage.Get(entry).Stage
	ts := st.TileSize()

	// Visible cell range; the background may wrap past the stage edges.
	x0 := int(math.Floor(cam.TopCorner.X / float64(ts)))
	y0 := int(math.Floor(cam.TopCorner.Y / float64(ts)))
	x1 := x0 + int(cam.Width)/ts + 1
	y1 := y0 + int(cam.Height)/ts + 1

	decor := cfg.RGBA(cfg.UI.DecorColor)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if st.Tile(stage.LayerBackground, x, y) != 0 {
				fillTile(screen, x, y, ts, off, decor)
			}
		}
	}

	for y := max(y0, 0); y <= min(y1, st.Height-1); y++ {
		for x := max(x0, 0); x <= min(x1, st.Width-1); x++ {
			if st.Tile(stage.LayerBase, x, y) == 0 {
				continue
			}
			fillTile(screen, x, y, ts, off, tileColor(st.SolidCode(x, y)))
		}
	}
}

func tileColor(code uint8) color.RGBA {
	switch code {
	case stage.CodeNone:
		return cfg.RGBA(cfg.UI.DecorColor)
	case stage.CodeBump:
		return cfg.RGBA(cfg.UI.BumpColor)
	case stage.CodeBreak:
		return cfg.RGBA(cfg.UI.BreakColor)
	case stage.CodeHurt:
		return cfg.RGBA(cfg.UI.HurtColor)
	}
	return cfg.RGBA(cfg.UI.SolidColor)
}

func fillTile(screen *ebiten.Image, x, y, ts int, off gamemath.Vector, c color.Color) {
	vector.FillRect(screen,
		float32(float64(x*ts)+off.X), float32(float64(y*ts)+off.Y),
		float32(ts), float32(ts), c, false)
}

// DrawEffects renders the falling pieces of broken tiles.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	_, off, ok := drawContext(ecs)
	if !ok {
		return
	}
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	st := components.Stage.Get(entry).Stage
	ts := float32(st.TileSize())

	base := cfg.RGBA(cfg.UI.BreakColor)
	for _, fx := range st.Effects() {
		if !fx.Exist {
			continue
		}
		c := base
		c.A = uint8(float64(c.A) * gamemath.ClampFloat(fx.Alpha, 0, 1))
		// Four quarters flying apart as the piece fades.
		spread := float32(1-fx.Alpha) * ts / 2
		for i := range 4 {
			sx, sy := float32(i%2), float32(i/2)
			vector.FillRect(screen,
				float32(fx.Pos.X+off.X)+sx*ts/2+(sx*2-1)*spread,
				float32(fx.Pos.Y+off.Y)+sy*ts/2,
				ts/2, ts/2, premultiply(c), false)
		}
	}
}

// DrawObjects renders every existing body as a filled hitbox.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	_, off, ok := drawContext(ecs)
	if !ok {
		return
	}
	ticks := GetOrCreateClock(ecs).Ticks

	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.RGBA(cfg.UI.CoinColor)
		if components.Item.Get(e).Kind == behaviors.ItemHeart {
			c = cfg.RGBA(cfg.UI.HeartColor)
		}
		drawBody(screen, components.Object.Get(e), off, c)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawBody(screen, components.Object.Get(e), off, cfg.RGBA(cfg.UI.EnemyColor))
	})
	tags.Flag.Each(ecs.World, func(e *donburi.Entry) {
		drawFlag(screen, components.Object.Get(e), components.Flag.Get(e).Active, off)
	})
	tags.Boomerang.Each(ecs.World, func(e *donburi.Entry) {
		drawBody(screen, components.Object.Get(e), off, cfg.RGBA(cfg.UI.BoomColor))
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		// Blink while invulnerable
		if components.Player.Get(e).Invulnerable() && ticks/4%2 == 0 {
			return
		}
		drawBody(screen, components.Object.Get(e), off, cfg.RGBA(cfg.UI.PlayerColor))
	})
}

func drawBody(screen *ebiten.Image, obj *components.ObjectData, off gamemath.Vector, c color.RGBA) {
	if !obj.Exist || !obj.InCamera {
		return
	}
	if obj.Dying {
		c.A /= 2
	}
	x, y, w, h := obj.Rect()
	vector.FillRect(screen,
		float32(math.Round(x+off.X)), float32(math.Round(y+off.Y)),
		float32(w), float32(h), premultiply(c), false)
}

// drawFlag draws a pole with a banner at the top, raised ones in the active
// color.
func drawFlag(screen *ebiten.Image, obj *components.ObjectData, active bool, off gamemath.Vector) {
	if !obj.Exist || !obj.InCamera {
		return
	}
	c := cfg.RGBA(cfg.UI.FlagColor)
	if active {
		c = cfg.RGBA(cfg.UI.FlagOnColor)
	}
	_, y, _, h := obj.Rect()
	px := float32(math.Round(obj.Pos.X + off.X))
	top := float32(math.Round(y + off.Y))
	vector.FillRect(screen, px-1, top, 2, float32(h), premultiply(c), false)
	vector.FillRect(screen, px+1, top, 7, 6, premultiply(c), false)
}

// premultiply turns a straight alpha color into the premultiplied form
// ebitengine expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
