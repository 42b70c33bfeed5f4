package behaviors

import (
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
)

// Checkpointer keeps the point a checkpoint flag hands over.
type Checkpointer interface {
	SetCheckpoint(x, y float64)
}

// Flag is a checkpoint. It is raised once the player walks past its pole and
// from then on the player respawns at its foot.
type Flag struct {
	Active bool
	// OnActivate runs once when the flag is raised.
	OnActivate func()
}

// NewFlag returns a flag standing with its foot at (x, y).
func NewFlag(x, y float64, active bool) (*physics.Body, *Flag) {
	f := &Flag{Active: active}
	b := physics.NewBody(cfg.Flag.Width, cfg.Flag.Height)
	b.Pos = gamemath.Vec(x, y)
	b.OldPos = b.Pos
	b.Center = gamemath.Vec(0, cfg.Flag.Height/2)
	b.Friction = gamemath.Vector{}
	b.TakeCollision = false
	b.Exist = true
	b.Hooks = f
	return b, f
}

func (f *Flag) CheckPlayer(b, player *physics.Body, dt float64) {
	if f.Active || !player.Active() || player.Pos.X <= b.Pos.X {
		return
	}
	f.Active = true
	if c, ok := player.Hooks.(Checkpointer); ok {
		c.SetCheckpoint(b.Pos.X, b.Pos.Y)
	}
	if f.OnActivate != nil {
		f.OnActivate()
	}
}
