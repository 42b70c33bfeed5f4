package stage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/tilerun/shared/gamemath"
)

// EffectConfig tunes the breaking-tile effect.
type EffectConfig struct {
	Duration float64 // in logical steps
	JumpY    float64
	Gravity  float64
}

var DefaultEffectConfig = EffectConfig{
	Duration: 30,
	JumpY:    -2,
	Gravity:  0.15,
}

// Effect is the visual left behind by a broken tile. It never collides.
type Effect struct {
	Pos    gamemath.Vector
	Speed  gamemath.Vector
	TileID int
	Alpha  float64
	Exist  bool

	gravity float64
	fade    *gween.Tween
}

func (e *Effect) start(x, y float64, tileID int, cfg EffectConfig) {
	e.Pos = gamemath.Vec(x, y)
	e.Speed = gamemath.Vec(0, cfg.JumpY)
	e.TileID = tileID
	e.Alpha = 1
	e.Exist = true
	e.gravity = cfg.Gravity
	e.fade = gween.New(1, 0, float32(cfg.Duration), ease.InQuad)
}

func (e *Effect) update(dt float64) {
	if !e.Exist {
		return
	}

	e.Speed.Y += e.gravity * dt
	e.Pos = e.Pos.Add(e.Speed.Scale(dt))

	alpha, done := e.fade.Update(float32(dt))
	e.Alpha = float64(alpha)
	if done {
		e.Exist = false
	}
}
