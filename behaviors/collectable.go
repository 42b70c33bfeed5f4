package behaviors

import (
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
)

type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemHeart
)

func (k ItemKind) String() string {
	if k == ItemHeart {
		return "heart"
	}
	return "coin"
}

// Collector receives picked up items.
type Collector interface {
	Collect(kind ItemKind, value int)
}

// Collectable is a coin or heart, either placed in the stage or popped out
// of a tile.
type Collectable struct {
	Kind  ItemKind
	Frame float64 // animation counter
	// Popped items are recycled once they leave the view.
	Popped bool

	spawnTimer float64
	deathTimer float64
}

// NewCollectable returns an item body that does not exist until it is
// placed or spawned.
func NewCollectable(kind ItemKind) (*physics.Body, *Collectable) {
	c := &Collectable{Kind: kind}
	b := physics.NewBody(cfg.Item.HitboxSize, cfg.Item.HitboxSize)
	b.Hooks = c
	return b, c
}

// Place puts a resting item at (x, y).
func (c *Collectable) Place(b *physics.Body, kind ItemKind, x, y float64) {
	c.reset(b, kind, x, y)
	c.Popped = false
}

// Spawn pops an item out at (x, y) with an upward speed.
func (c *Collectable) Spawn(b *physics.Body, kind ItemKind, x, y, jumpSpeed float64) {
	c.reset(b, kind, x, y)
	c.Popped = true
	b.Friction.Y = cfg.Item.Friction
	b.Target.Y = cfg.Item.Gravity
	b.Speed.Y = jumpSpeed
	c.spawnTimer = cfg.Item.SpawnTime
}

func (c *Collectable) reset(b *physics.Body, kind ItemKind, x, y float64) {
	c.Kind = kind
	c.Frame = 0
	c.spawnTimer = 0
	c.deathTimer = 0

	b.Pos = gamemath.Vec(x, y)
	b.OldPos = b.Pos
	b.Speed = gamemath.Vector{}
	b.Target = gamemath.Vector{}
	b.Friction = gamemath.Vec(1, 1)
	b.Margins = cfg.Margins()
	b.Exist = true
	b.Dying = false
	b.InCamera = true
}

func (c *Collectable) UpdateLogic(b *physics.Body, dt float64) {
	if c.spawnTimer > 0 {
		c.spawnTimer -= dt
	}
}

func (c *Collectable) Animate(b *physics.Body, dt float64) {
	const animSpeed = 8
	c.Frame += dt / animSpeed
	if c.Frame >= 4 {
		c.Frame -= 4
	}
}

func (c *Collectable) HiddenAnimation(b *physics.Body, dt float64) {
	c.Animate(b, dt)
}

func (c *Collectable) FloorEvent(b *physics.Body, dt float64) {
	b.Speed.Y = 0
}

// HostileCollision hands the item to the body that touched it.
func (c *Collectable) HostileCollision(b, other *physics.Body, dt float64) {
	if c.spawnTimer > 0 {
		return
	}
	col, ok := other.Hooks.(Collector)
	if !ok {
		return
	}
	b.Dying = true

	value := cfg.Item.CoinValue
	if c.Kind == ItemHeart {
		value = cfg.Item.HeartValue
	}
	col.Collect(c.Kind, value)
}

func (c *Collectable) Die(b *physics.Body, dt float64) bool {
	c.deathTimer += dt
	b.Pos.Y -= dt / 2
	return c.deathTimer >= cfg.Item.DeathTime
}

func (c *Collectable) CheckCamera(b *physics.Body, visible bool) {
	if !visible && c.Popped && !b.Dying {
		b.Exist = false
	}
}

// Collectible reports whether the item can be picked up yet.
func (c *Collectable) Collectible() bool {
	return c.spawnTimer <= 0
}
