package behaviors

import (
	"math"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
)

// Controls is the input the player script reads each tick.
type Controls interface {
	Axis() float64
	JumpPressed() bool
	JumpHeld() bool
	CrouchHeld() bool
	ThrowPressed() bool
}

// Player is the controllable character.
type Player struct {
	Controls Controls
	// Spawn is where the player comes back after dying; checkpoints move it
	// away from Start.
	Spawn gamemath.Vector
	Start gamemath.Vector

	Facing    float64
	CanJump   bool
	Crouching bool
	// ThrowRequested is set on the tick the throw button goes down.
	ThrowRequested bool

	Health int
	Coins  int
	Lives  int

	HurtTimer float64
	// OnHurt is called after the player takes damage.
	OnHurt func()

	jumpTimer   float64
	jumpMargin  float64
	stompMargin float64
	deathTimer  float64
}

// NewPlayer returns a player body standing with its feet at (x, y).
func NewPlayer(x, y float64, c Controls) (*physics.Body, *Player) {
	p := &Player{
		Controls: c,
		Spawn:    gamemath.Vec(x, y),
		Start:    gamemath.Vec(x, y),
		Lives:    cfg.Player.StartingLife,
	}
	b := physics.NewBody(cfg.Player.HitboxWidth, cfg.Player.HitboxHeight)
	b.Hooks = p
	p.Respawn(b)
	return b, p
}

// Respawn puts the player back on its spawn point with full health.
func (p *Player) Respawn(b *physics.Body) {
	b.Pos = p.Spawn
	b.OldPos = p.Spawn
	b.Speed = gamemath.Vector{}
	b.Target = gamemath.Vector{}
	b.Friction = gamemath.Vec(cfg.Player.FrictionX, cfg.Player.FrictionY)
	b.Margins = cfg.Margins()
	p.stand(b)
	b.Exist = true
	b.Dying = false
	b.InCamera = true

	p.Facing = cfg.DirectionRight
	p.Health = cfg.Player.MaxHealth
	p.CanJump = false
	p.ThrowRequested = false
	p.HurtTimer = 0
	p.jumpTimer = 0
	p.jumpMargin = 0
	p.stompMargin = 0
	p.deathTimer = 0
}

func (p *Player) UpdateLogic(b *physics.Body, dt float64) {
	var axis float64
	var pressed, held, crouch bool
	p.ThrowRequested = false
	if p.Controls != nil {
		axis = gamemath.ClampFloat(p.Controls.Axis(), -1, 1)
		pressed = p.Controls.JumpPressed()
		held = p.Controls.JumpHeld()
		crouch = p.Controls.CrouchHeld()
		p.ThrowRequested = p.Controls.ThrowPressed()
	}

	// Crouching only starts on the ground and ends as soon as the button is
	// let go or the player leaves the floor.
	switch {
	case crouch && p.CanJump && !pressed:
		p.crouch(b)
	case p.Crouching:
		p.stand(b)
	}
	if p.Crouching {
		axis = 0
	}

	b.Target.X = axis * cfg.Player.RunTarget
	b.Target.Y = cfg.Player.Gravity

	switch {
	case p.stompMargin > 0 && held:
		p.jumpTimer = p.stompMargin
		p.stompMargin = 0
	case (p.CanJump || p.jumpMargin > 0) && pressed:
		p.jumpTimer = cfg.Player.JumpTime
		p.jumpMargin = 0
	case !held:
		p.jumpTimer = 0
	}

	if p.jumpTimer > 0 {
		p.jumpTimer -= dt
		b.Speed.Y = cfg.Player.JumpSpeed
	}
	if p.jumpMargin > 0 {
		p.jumpMargin -= dt
	}
	if p.stompMargin > 0 {
		p.stompMargin -= dt
	}
}

// crouch shrinks the colbox from the top. The feet stay on Pos, the hitbox
// keeps its size.
func (p *Player) crouch(b *physics.Body) {
	p.Crouching = true
	b.Colbox.Y = cfg.Player.CrouchHeight
	b.Center.Y = cfg.Player.CrouchHeight / 2
}

func (p *Player) stand(b *physics.Body) {
	p.Crouching = false
	b.Colbox.Y = cfg.Player.HitboxHeight
	b.Center.Y = cfg.Player.HitboxHeight / 2
}

func (p *Player) Animate(b *physics.Body, dt float64) {
	const eps = 0.01
	if math.Abs(b.Target.X) > eps {
		p.Facing = gamemath.Sign(b.Target.X)
	}
}

// PostMovement clears the floor flag; the stage collision pass of the same
// tick sets it again while the player stands on something.
func (p *Player) PostMovement(b *physics.Body, dt float64) {
	p.CanJump = false
	if p.HurtTimer > 0 {
		p.HurtTimer -= dt
	}
}

func (p *Player) FloorEvent(b *physics.Body, dt float64) {
	b.Speed.Y = 0
	p.jumpMargin = cfg.Player.JumpMarginTime
	p.CanJump = true
}

func (p *Player) CeilingEvent(b *physics.Body, dt float64) {
	b.Speed.Y = 0
	p.jumpTimer = 0
}

func (p *Player) WallEvent(b *physics.Body, dir int, dt float64) {
	b.Speed.X = 0
}

// Hurt handles hurt tiles and the pit.
func (p *Player) Hurt(b *physics.Body, instantKill bool, dt float64) {
	if instantKill {
		p.Health = 0
		b.Kill()
		return
	}
	p.Damage(b, 1)
}

// Damage removes health unless the player is still invulnerable, and knocks
// the player away from where it is facing.
func (p *Player) Damage(b *physics.Body, amount int) {
	if p.HurtTimer > 0 || !b.Active() {
		return
	}
	p.Health -= amount
	p.HurtTimer = cfg.Player.HurtTime
	b.Speed.X = -p.Facing * cfg.Player.KnockbackX
	b.Speed.Y = cfg.Player.KnockbackY
	p.jumpTimer = 0

	if p.OnHurt != nil {
		p.OnHurt()
	}
	if p.Health <= 0 {
		p.Health = 0
		b.Kill()
	}
}

// SetCheckpoint moves the respawn point.
func (p *Player) SetCheckpoint(x, y float64) {
	p.Spawn = gamemath.Vec(x, y)
}

// ClearCheckpoint sends the next respawn back to the start of the stage.
func (p *Player) ClearCheckpoint() {
	p.Spawn = p.Start
}

// Bounce launches the player after stomping an enemy. Holding jump extends
// the bounce.
func (p *Player) Bounce(b *physics.Body) {
	b.Speed.Y = cfg.Player.StompJumpSpeed
	p.stompMargin = cfg.Player.StompMargin
}

// Collect applies a picked up item.
func (p *Player) Collect(kind ItemKind, value int) {
	switch kind {
	case ItemCoin:
		p.Coins += value
	case ItemHeart:
		p.Health = min(cfg.Player.MaxHealth, p.Health+value)
	}
}

func (p *Player) Die(b *physics.Body, dt float64) bool {
	p.deathTimer += dt
	return p.deathTimer >= cfg.Player.DeathTime
}

func (p *Player) Aim(b *physics.Body) float64 {
	return p.Facing
}

// Invulnerable reports whether the player blinks after a hit.
func (p *Player) Invulnerable() bool {
	return p.HurtTimer > 0
}
