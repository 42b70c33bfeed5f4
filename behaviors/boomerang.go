package behaviors

import (
	"math"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
)

type BoomerangPhase int

const (
	BoomerangHeld BoomerangPhase = iota
	BoomerangOutbound
	BoomerangReturning
)

// Boomerang flies straight ahead until it has covered its range or hits
// something, then homes back to its owner through walls.
type Boomerang struct {
	Owner    *physics.Body
	Phase    BoomerangPhase
	Traveled float64
}

// NewBoomerang returns a held boomerang. Its body does not exist until
// thrown.
func NewBoomerang(owner *physics.Body) (*physics.Body, *Boomerang) {
	r := &Boomerang{Owner: owner}
	b := physics.NewBody(cfg.Boomerang.Size, cfg.Boomerang.Size)
	b.Margins = cfg.Margins()
	b.Hooks = r
	return b, r
}

// Throw launches the boomerang from the owner's middle in the facing
// direction. It reports false when the boomerang is already out.
func (r *Boomerang) Throw(b *physics.Body, facing float64) bool {
	if b.Exist || r.Owner == nil || !r.Owner.Active() {
		return false
	}
	o := r.Owner.Origin()
	b.Pos = gamemath.Vec(o.X+facing*cfg.Boomerang.ThrowOffset, o.Y)
	b.OldPos = b.Pos
	b.Speed = gamemath.Vec(facing*cfg.Boomerang.ThrowSpeed, 0)
	b.Target = b.Speed
	b.Friction = gamemath.Vec(cfg.Boomerang.ReturnFriction, cfg.Boomerang.ReturnFriction)
	b.TakeCollision = true
	b.Exist = true
	b.Dying = false
	b.InCamera = true

	r.Phase = BoomerangOutbound
	r.Traveled = 0
	return true
}

// Return turns the boomerang back. A returning boomerang no longer collides
// with the stage.
func (r *Boomerang) Return(b *physics.Body) {
	if r.Phase != BoomerangOutbound {
		return
	}
	r.Phase = BoomerangReturning
	b.TakeCollision = false
}

// Hit stops an outbound boomerang on the spot and sends it back.
func (r *Boomerang) Hit(b *physics.Body) {
	if r.Phase == BoomerangOutbound {
		b.Speed = gamemath.Vector{}
	}
	r.Return(b)
}

// Drop puts the boomerang back in the owner's hand.
func (r *Boomerang) Drop(b *physics.Body) {
	b.Exist = false
	b.Dying = false
	b.TakeCollision = true
	r.Phase = BoomerangHeld
	r.Traveled = 0
}

func (r *Boomerang) UpdateLogic(b *physics.Body, dt float64) {
	switch r.Phase {
	case BoomerangOutbound:
		r.Traveled += math.Abs(b.Speed.X) * dt
		if r.Traveled >= cfg.Boomerang.Range {
			r.Return(b)
		}
	case BoomerangReturning:
		if r.Owner == nil || !r.Owner.Active() {
			r.Drop(b)
			return
		}
		b.Target = gamemath.HomingVelocity(b.Origin(), r.Owner.Origin(), cfg.Boomerang.ReturnSpeed)
	}
}

// PostMovement catches a returning boomerang once it reaches the owner.
func (r *Boomerang) PostMovement(b *physics.Body, dt float64) {
	if r.Phase == BoomerangReturning && b.Overlaps(r.Owner) {
		r.Drop(b)
	}
}

func (r *Boomerang) FloorEvent(b *physics.Body, dt float64) {
	r.Hit(b)
}

func (r *Boomerang) CeilingEvent(b *physics.Body, dt float64) {
	r.Hit(b)
}

func (r *Boomerang) WallEvent(b *physics.Body, dir int, dt float64) {
	r.Hit(b)
}
