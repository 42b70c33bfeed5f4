// Package camera frames the view around a followed body and keeps it inside
// the stage.
package camera

import (
	"math"

	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/physics"
)

// Bounds is the pixel size of the area the view must stay inside.
type Bounds interface {
	PixelWidth() float64
	PixelHeight() float64
}

// Settings tunes the framing.
type Settings struct {
	DeadZone     float64 // vertical slack before the view follows, px
	LookDistance float64 // horizontal look-ahead at full aim, px
	LookSpeed    float64 // look ease rate, px per step
	VisiblePad   float64 // extra margin around the view for CheckBody, px
}

var DefaultSettings = Settings{
	DeadZone:     16,
	LookDistance: 32,
	LookSpeed:    1,
	VisiblePad:   16,
}

// Camera is a view rectangle centered on Pos.
type Camera struct {
	Pos        gamemath.Vector
	Width      float64
	Height     float64
	Look       gamemath.Vector
	LookTarget gamemath.Vector
	TopCorner  gamemath.Vector
	Settings   Settings

	shake shake
}

type shake struct {
	intensity float64
	duration  float64
	elapsed   float64
	offset    gamemath.Vector
}

// New returns a camera of the given view size centered at (x, y).
func New(x, y, w, h float64, s Settings) *Camera {
	c := &Camera{
		Pos:      gamemath.Vec(x, y),
		Width:    w,
		Height:   h,
		Settings: s,
	}
	c.updateTopCorner()
	return c
}

// FollowObject moves the view toward the target body.
func (c *Camera) FollowObject(target *physics.Body, bounds Bounds, dt float64) {
	ref := target.Pos.Sub(target.Center)

	c.Pos.X = ref.X

	dz := c.Settings.DeadZone
	switch dy := ref.Y - c.Pos.Y; {
	case dy > dz:
		c.Pos.Y = ref.Y - dz
	case dy < -dz:
		c.Pos.Y = ref.Y + dz
	}

	// Look-ahead only runs while the target is away from both edges.
	minX, maxX := c.Width/2, bounds.PixelWidth()-c.Width/2
	pinned := ref.X <= minX || ref.X >= maxX
	if !pinned {
		c.LookTarget = gamemath.Vec(aimOf(target)*c.Settings.LookDistance, 0)
		c.Look.X = gamemath.UpdateSpeedAxis(c.Look.X, c.LookTarget.X, c.Settings.LookSpeed*dt)
		c.Pos.X += c.Look.X
	}

	c.Restrict(bounds)

	if pinned {
		c.Look = gamemath.Vector{}
		c.LookTarget = gamemath.Vector{}
	}
}

func aimOf(b *physics.Body) float64 {
	if a, ok := b.Hooks.(physics.Aimer); ok {
		return gamemath.ClampFloat(a.Aim(b), -1, 1)
	}
	if b.Speed.X == 0 {
		return 0
	}
	return gamemath.Sign(b.Speed.X)
}

// Restrict clamps the view inside bounds. The clamp delta is added to Look
// so the eased offset matches the visible one.
func (c *Camera) Restrict(bounds Bounds) {
	x := clampAxis(c.Pos.X, c.Width, bounds.PixelWidth())
	y := clampAxis(c.Pos.Y, c.Height, bounds.PixelHeight())

	c.Look.X += x - c.Pos.X
	c.Pos = gamemath.Vec(x, y)

	c.updateTopCorner()
}

// clampAxis keeps a view of size view centered at p inside [0, size]. A
// stage smaller than the view pins the view to the origin.
func clampAxis(p, view, size float64) float64 {
	if size <= view {
		return view / 2
	}
	return gamemath.ClampFloat(p, view/2, size-view/2)
}

func (c *Camera) updateTopCorner() {
	c.TopCorner = gamemath.Vec(c.Pos.X-c.Width/2, c.Pos.Y-c.Height/2)
}

// Visible reports whether a rectangle touches the padded view.
func (c *Camera) Visible(x, y, w, h float64) bool {
	pad := c.Settings.VisiblePad
	return x+w > c.TopCorner.X-pad &&
		x < c.TopCorner.X+c.Width+pad &&
		y+h > c.TopCorner.Y-pad &&
		y < c.TopCorner.Y+c.Height+pad
}

// CheckBody refreshes the body's visibility flag and notifies its
// CameraChecker.
func (c *Camera) CheckBody(b *physics.Body) {
	if !b.Exist {
		return
	}
	b.InCamera = c.Visible(b.Rect())
	if cc, ok := b.Hooks.(physics.CameraChecker); ok {
		cc.CheckCamera(b, b.InCamera)
	}
}

// Shake starts a decaying shake. A weaker shake never replaces a running
// stronger one.
func (c *Camera) Shake(intensity, duration float64) {
	if c.shake.elapsed < c.shake.duration && intensity <= c.shake.intensity {
		return
	}
	c.shake = shake{intensity: intensity, duration: duration}
}

// Update advances the shake.
func (c *Camera) Update(dt float64) {
	s := &c.shake
	if s.elapsed >= s.duration {
		s.offset = gamemath.Vector{}
		return
	}
	s.elapsed += dt

	progress := max((s.duration-s.elapsed)/s.duration, 0)
	amp := s.intensity * progress
	s.offset = gamemath.Vec(math.Sin(s.elapsed*1.1)*amp, math.Cos(s.elapsed*1.3)*amp)
}

// DrawOffset is the translation applied when drawing world space. It is the
// negated top corner plus any shake.
func (c *Camera) DrawOffset() gamemath.Vector {
	return gamemath.Vec(
		math.Round(-c.TopCorner.X+c.shake.offset.X),
		math.Round(-c.TopCorner.Y+c.shake.offset.Y),
	)
}
