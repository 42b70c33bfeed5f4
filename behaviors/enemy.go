package behaviors

import (
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
)

// Stompable is the player side of an enemy contact.
type Stompable interface {
	Bounce(b *physics.Body)
	Damage(b *physics.Body, amount int)
}

// enemy holds what walkers and hoppers share.
type enemy struct {
	CanJump    bool
	Facing     float64
	deathTimer float64
}

func newEnemyBody(x, y float64) *physics.Body {
	b := physics.NewBody(cfg.Enemy.HitboxWidth, cfg.Enemy.HitboxHeight)
	b.Pos = gamemath.Vec(x, y)
	b.OldPos = b.Pos
	b.Center = gamemath.Vec(0, cfg.Enemy.HitboxHeight/2)
	b.Friction = gamemath.Vec(cfg.Enemy.Friction, cfg.Enemy.Friction)
	b.Target.Y = cfg.Enemy.Gravity
	b.Margins = cfg.Margins()
	b.Exist = true
	return b
}

func (e *enemy) PostMovement(b *physics.Body, dt float64) {
	e.CanJump = false
}

func (e *enemy) FloorEvent(b *physics.Body, dt float64) {
	e.CanJump = true
	b.Speed.Y = 0
}

func (e *enemy) Die(b *physics.Body, dt float64) bool {
	e.deathTimer += dt
	return e.deathTimer >= cfg.Enemy.DeathTime
}

// Hurt kills the enemy on any hurt zone, including the pit.
func (e *enemy) Hurt(b *physics.Body, instantKill bool, dt float64) {
	b.Kill()
}

// Projectile is a thrown body that kills the enemies it touches.
type Projectile interface {
	Hit(b *physics.Body)
}

// HostileCollision kills the enemy when a projectile touches it. For the
// player it is a stomp when the player comes down onto the top of this
// body, a hit otherwise.
func (e *enemy) HostileCollision(b, other *physics.Body, dt float64) {
	if p, ok := other.Hooks.(Projectile); ok {
		b.Kill()
		b.Speed = gamemath.Vector{}
		p.Hit(other)
		return
	}

	s, ok := other.Hooks.(Stompable)
	if !ok {
		return
	}

	top := b.Pos.Y - b.Center.Y - b.Hitbox.Y/2
	feet := other.Pos.Y - other.Center.Y + other.Hitbox.Y/2
	if other.Speed.Y > b.Speed.Y &&
		feet >= top &&
		feet < top+(cfg.Enemy.StompMargin+max(0, other.Speed.Y))*dt {

		b.Kill()
		b.Speed = gamemath.Vector{}
		s.Bounce(other)
		return
	}
	s.Damage(other, 1)
}

// Walker paces back and forth, turning at walls and ledges.
type Walker struct {
	enemy
	wasOnFloor bool
}

// NewWalker starts walking in a direction chosen by tile column parity. It
// only turns at ledges once it has landed.
func NewWalker(x, y float64, tileSize int) (*physics.Body, *Walker) {
	w := &Walker{}
	b := newEnemyBody(x, y)
	b.Colbox.X = cfg.Enemy.ColboxWidth
	b.Hooks = w

	dir := -1.0
	if (int(x)/tileSize)%2 == 0 {
		dir = 1
	}
	b.Target.X = dir * cfg.Enemy.WalkSpeed
	w.Facing = dir
	return b, w
}

func (w *Walker) UpdateLogic(b *physics.Body, dt float64) {
	if w.wasOnFloor && !w.CanJump {
		w.turn(b)
		b.Pos.X += b.Speed.X * dt
	}
}

func (w *Walker) PostMovement(b *physics.Body, dt float64) {
	w.wasOnFloor = w.CanJump
	w.enemy.PostMovement(b, dt)
}

func (w *Walker) Animate(b *physics.Body, dt float64) {
	w.Facing = gamemath.Sign(b.Target.X)
}

func (w *Walker) WallEvent(b *physics.Body, dir int, dt float64) {
	w.turn(b)
}

func (w *Walker) turn(b *physics.Body) {
	b.Target.X = -b.Target.X
	b.Speed.X = -b.Speed.X
}

// Hopper sits still until the player comes close, then jumps toward it.
type Hopper struct {
	enemy
	Awake    bool
	dirX     float64
	hopTimer float64
}

func NewHopper(x, y float64) (*physics.Body, *Hopper) {
	h := &Hopper{enemy: enemy{Facing: cfg.DirectionLeft}}
	b := newEnemyBody(x, y)
	b.Hooks = h
	return b, h
}

func (h *Hopper) CheckPlayer(b, player *physics.Body, dt float64) {
	if !player.Active() {
		h.Awake = false
		return
	}
	dx := player.Pos.X - b.Pos.X
	h.Awake = dx*dx < cfg.Enemy.HopRange*cfg.Enemy.HopRange
	if dx != 0 {
		h.dirX = gamemath.Sign(dx)
	}
}

func (h *Hopper) UpdateLogic(b *physics.Body, dt float64) {
	if h.hopTimer > 0 {
		h.hopTimer -= dt
	}
	if !h.CanJump {
		return
	}
	b.Target.X = 0
	if h.Awake && h.hopTimer <= 0 {
		b.Speed.Y = cfg.Enemy.HopJump
		b.Target.X = h.dirX * cfg.Enemy.HopSpeed
		b.Speed.X = b.Target.X
		h.hopTimer = cfg.Enemy.HopInterval
	}
}

func (h *Hopper) Animate(b *physics.Body, dt float64) {
	if h.dirX != 0 {
		h.Facing = h.dirX
	}
}

func (h *Hopper) WallEvent(b *physics.Body, dir int, dt float64) {
	b.Speed.X = 0
	b.Target.X = 0
}

func (h *Hopper) CeilingEvent(b *physics.Body, dt float64) {
	b.Speed.Y = 0
}
