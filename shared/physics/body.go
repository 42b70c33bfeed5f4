// Package physics holds the game object motion model and the axis-aligned
// collision checks run against the tile grid.
package physics

import "github.com/automoto/tilerun/shared/gamemath"

// Margins are the edge check windows, in pixels per logical step.
type Margins struct {
	FloorTop      float64
	FloorBottom   float64
	CeilingBottom float64
	CeilingTop    float64
	WallNear      float64
	WallFar       float64
	// WallSafe insets the vertical overlap test so that a body resting on a
	// floor tile does not hit the walls of the row it stands on.
	WallSafe float64
}

// DefaultMargins are the values the movement constants are tuned against.
var DefaultMargins = Margins{
	FloorTop:      1,
	FloorBottom:   2,
	CeilingBottom: 1,
	CeilingTop:    2,
	WallNear:      1,
	WallFar:       2,
	WallSafe:      1,
}

// Body is the base entity shared by the player, enemies and items.
type Body struct {
	Pos      gamemath.Vector
	OldPos   gamemath.Vector
	Speed    gamemath.Vector
	Target   gamemath.Vector
	Friction gamemath.Vector

	Hitbox gamemath.Vector
	Colbox gamemath.Vector
	// Center is the offset from Pos to the middle of the collision rectangle;
	// rectangles are centered on Pos - Center.
	Center gamemath.Vector

	Exist         bool
	Dying         bool
	InCamera      bool
	TakeCollision bool

	Margins Margins
	Hooks   any
}

// NewBody returns a body with the given hitbox, which is also used as the
// collision box. The body does not exist until the caller sets Exist.
func NewBody(w, h float64) *Body {
	return &Body{
		Friction:      gamemath.Vec(1, 1),
		Hitbox:        gamemath.Vec(w, h),
		Colbox:        gamemath.Vec(w, h),
		TakeCollision: true,
		Margins:       DefaultMargins,
	}
}

// Origin is the middle of the body's collision and hit rectangles.
func (b *Body) Origin() gamemath.Vector {
	return b.Pos.Sub(b.Center)
}

// Rect returns the hitbox rectangle as x, y, w, h.
func (b *Body) Rect() (x, y, w, h float64) {
	o := b.Origin()
	return o.X - b.Hitbox.X/2, o.Y - b.Hitbox.Y/2, b.Hitbox.X, b.Hitbox.Y
}

// CollisionRect returns the colbox rectangle as x, y, w, h.
func (b *Body) CollisionRect() (x, y, w, h float64) {
	o := b.Origin()
	return o.X - b.Colbox.X/2, o.Y - b.Colbox.Y/2, b.Colbox.X, b.Colbox.Y
}

// BaseMovement eases speed toward target and advances the position.
func (b *Body) BaseMovement(dt float64) {
	b.Speed.X = gamemath.UpdateSpeedAxis(b.Speed.X, b.Target.X, b.Friction.X*dt)
	b.Speed.Y = gamemath.UpdateSpeedAxis(b.Speed.Y, b.Target.Y, b.Friction.Y*dt)

	b.Pos.X += b.Speed.X * dt
	b.Pos.Y += b.Speed.Y * dt
}

// Update runs one logical tick. The hook order is fixed: logic sets the
// target before integration, and the post-movement hook runs before the
// stage collision pass of the same tick.
func (b *Body) Update(dt float64) {
	if !b.Exist {
		return
	}
	b.OldPos = b.Pos

	if b.Dying {
		d, ok := b.Hooks.(Dier)
		if !ok || d.Die(b, dt) {
			b.Dying = false
			b.Exist = false
		}
		return
	}

	if !b.InCamera {
		if h, ok := b.Hooks.(HiddenAnimator); ok {
			h.HiddenAnimation(b, dt)
		}
		return
	}

	if l, ok := b.Hooks.(LogicUpdater); ok {
		l.UpdateLogic(b, dt)
	}
	if a, ok := b.Hooks.(Animator); ok {
		a.Animate(b, dt)
	}

	b.BaseMovement(dt)

	if p, ok := b.Hooks.(PostMover); ok {
		p.PostMovement(b, dt)
	}
}

// Kill starts the death routine.
func (b *Body) Kill() {
	if b.Exist {
		b.Dying = true
	}
}

// Active reports whether the body takes part in movement and collision.
func (b *Body) Active() bool {
	return b.Exist && !b.Dying
}
