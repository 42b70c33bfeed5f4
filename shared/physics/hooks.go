package physics

// The interfaces below are optional capabilities of a body's Hooks value.
// A behavior implements whichever subset it needs; a missing capability is a
// no-op.

type LogicUpdater interface {
	UpdateLogic(b *Body, dt float64)
}

type Animator interface {
	Animate(b *Body, dt float64)
}

// Dier runs the death routine. It returns true once the routine is over and
// the body may be recycled.
type Dier interface {
	Die(b *Body, dt float64) bool
}

// PostMover runs after integration and before stage collision.
type PostMover interface {
	PostMovement(b *Body, dt float64)
}

// HiddenAnimator is the reduced update for bodies outside the camera.
type HiddenAnimator interface {
	HiddenAnimation(b *Body, dt float64)
}

type FloorHandler interface {
	FloorEvent(b *Body, dt float64)
}

type CeilingHandler interface {
	CeilingEvent(b *Body, dt float64)
}

// WallHandler receives dir = +1 for a wall on the right, -1 on the left.
type WallHandler interface {
	WallEvent(b *Body, dir int, dt float64)
}

// HostileCollider reacts to another body (usually the player) touching it.
type HostileCollider interface {
	HostileCollision(b, other *Body, dt float64)
}

// Hurter makes a body susceptible to hurt tiles and the bottomless pit.
type Hurter interface {
	Hurt(b *Body, instantKill bool, dt float64)
}

type PlayerChecker interface {
	CheckPlayer(b, player *Body, dt float64)
}

type CameraChecker interface {
	CheckCamera(b *Body, visible bool)
}

// Aimer reports the horizontal facing used for camera look-ahead, in [-1, 1].
type Aimer interface {
	Aim(b *Body) float64
}
