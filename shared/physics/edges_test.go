package physics

import (
	"testing"

	"github.com/automoto/tilerun/shared/gamemath"
)

type events struct {
	floor, ceiling int
	walls          []int
}

func (e *events) FloorEvent(b *Body, dt float64) {
	e.floor++
	b.Speed.Y = 0
}
func (e *events) CeilingEvent(b *Body, dt float64) {
	e.ceiling++
	b.Speed.Y = 0
}
func (e *events) WallEvent(b *Body, dir int, dt float64) {
	e.walls = append(e.walls, dir)
	b.Speed.X = 0
}

// newFeetBody returns an 8x16 body whose Pos is the middle of its bottom edge.
func newFeetBody(ev *events) *Body {
	b := NewBody(8, 16)
	b.Center = gamemath.Vec(0, 8)
	b.Exist = true
	b.Hooks = ev
	return b
}

func TestFloorCollisionCatchesFastFall(t *testing.T) {
	tests := []struct {
		name   string
		startY float64
		speedY float64
	}{
		{"slow", 114, 2.5},
		{"fast", 100, 20},
		{"very fast", 90, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &events{}
			b := newFeetBody(ev)
			b.Pos = gamemath.Vec(40, tt.startY)
			b.Speed.Y = tt.speedY
			b.Target.Y = tt.speedY
			b.OldPos = b.Pos
			b.BaseMovement(1)

			if !b.FloorCollision(32, 116, 16, 1) {
				t.Fatalf("bottom %f was not caught by floor at 116", b.Pos.Y)
			}
			if b.Pos.Y != 116 {
				t.Errorf("Pos.Y = %f, want 116", b.Pos.Y)
			}
			if ev.floor != 1 {
				t.Errorf("floor events = %d, want 1", ev.floor)
			}
		})
	}
}

func TestFloorCollisionIgnoresRisingBody(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.Pos = gamemath.Vec(40, 117)
	b.Speed.Y = -2

	if b.FloorCollision(32, 116, 16, 1) {
		t.Error("rising body landed on the floor")
	}
	if ev.floor != 0 || b.Pos.Y != 117 {
		t.Errorf("floor events = %d, pos = %f", ev.floor, b.Pos.Y)
	}
}

func TestFloorCollisionRequiresHorizontalOverlap(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.Pos = gamemath.Vec(20, 117)
	b.Speed.Y = 1

	if b.FloorCollision(32, 116, 16, 1) {
		t.Error("floor tile to the right caught the body")
	}
}

func TestFloorCollisionRespectsTakeCollision(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.Pos = gamemath.Vec(40, 117)
	b.Speed.Y = 1
	b.TakeCollision = false

	if b.FloorCollision(32, 116, 16, 1) {
		t.Error("body with TakeCollision=false collided")
	}
}

func TestFloorCollisionWindowAboveSurface(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.Pos = gamemath.Vec(40, 114)
	b.Speed.Y = 0.5

	if b.FloorCollision(32, 116, 16, 1) {
		t.Error("body 2px above the surface snapped down")
	}
}

func TestCeilingCollision(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	// Top edge at 62, tile bottom at 64.
	b.Pos = gamemath.Vec(40, 78)
	b.Speed.Y = -3

	if !b.CeilingCollision(32, 64, 16, 1) {
		t.Fatal("ceiling not hit")
	}
	if b.Pos.Y != 80 {
		t.Errorf("Pos.Y = %f, want 80", b.Pos.Y)
	}
	if ev.ceiling != 1 {
		t.Errorf("ceiling events = %d, want 1", ev.ceiling)
	}
}

func TestCeilingCollisionIgnoresFallingBody(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.Pos = gamemath.Vec(40, 79)
	b.Speed.Y = 1

	if b.CeilingCollision(32, 64, 16, 1) {
		t.Error("falling body hit the ceiling")
	}
}

func TestWallCollisionRight(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.OldPos = gamemath.Vec(50, 100)
	b.Pos = gamemath.Vec(53, 100)
	b.Speed.X = 3

	if !b.WallCollision(56, 80, 16, 1, 1) {
		t.Fatal("wall not hit")
	}
	if b.Pos.X != 52 {
		t.Errorf("Pos.X = %f, want 52", b.Pos.X)
	}
	if len(ev.walls) != 1 || ev.walls[0] != 1 {
		t.Errorf("wall events = %v, want [1]", ev.walls)
	}
}

func TestWallCollisionSweepCatchesTunneling(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	// Leading edge goes from 50 to 80, clean past a wall face at 56.
	b.OldPos = gamemath.Vec(46, 100)
	b.Pos = gamemath.Vec(76, 100)
	b.Speed.X = 30

	if !b.WallCollision(56, 80, 16, 1, 1) {
		t.Fatal("tunneling body was not caught")
	}
	if b.Pos.X != 52 {
		t.Errorf("Pos.X = %f, want 52", b.Pos.X)
	}
}

func TestWallCollisionLeft(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	// Wall face at 32 blocks leftward motion; left edge moves 34 -> 31.
	b.OldPos = gamemath.Vec(38, 100)
	b.Pos = gamemath.Vec(35, 100)
	b.Speed.X = -3

	if !b.WallCollision(32, 80, 16, -1, 1) {
		t.Fatal("left wall not hit")
	}
	if b.Pos.X != 36 {
		t.Errorf("Pos.X = %f, want 36", b.Pos.X)
	}
	if len(ev.walls) != 1 || ev.walls[0] != -1 {
		t.Errorf("wall events = %v, want [-1]", ev.walls)
	}
}

func TestWallCollisionIgnoresBodiesMovingAway(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.OldPos = gamemath.Vec(53, 100)
	b.Pos = gamemath.Vec(53, 100)
	b.Speed.X = -1

	if b.WallCollision(56, 80, 16, 1, 1) {
		t.Error("body moving away from the wall was caught")
	}
}

func TestWallCollisionIgnoresBodyBeyondFarSide(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	b.OldPos = gamemath.Vec(70, 100)
	b.Pos = gamemath.Vec(72, 100)
	b.Speed.X = 2

	if b.WallCollision(56, 80, 16, 1, 1) {
		t.Error("body already past the wall was pulled back")
	}
}

func TestWallCollisionSafeMarginForRestingBody(t *testing.T) {
	ev := &events{}
	b := newFeetBody(ev)
	// Feet exactly on the top of the wall tile row.
	b.OldPos = gamemath.Vec(50, 96)
	b.Pos = gamemath.Vec(53, 96)
	b.Speed.X = 3

	if b.WallCollision(56, 96, 16, 1, 1) {
		t.Error("body standing on the tile row hit its wall")
	}
}

func TestHurtCollision(t *testing.T) {
	type hurtLog struct{ kills, hurts int }
	var log hurtLog
	b := NewBody(8, 8)
	b.Exist = true
	b.Pos = gamemath.Vec(10, 10)
	b.Hooks = hurterFunc(func(b *Body, kill bool, dt float64) {
		if kill {
			log.kills++
		} else {
			log.hurts++
		}
	})

	if !b.HurtCollision(8, 8, 16, 16, false, 1) {
		t.Error("overlapping hurt zone ignored")
	}
	if b.HurtCollision(40, 40, 16, 16, true, 1) {
		t.Error("distant hurt zone applied")
	}
	if !b.HurtCollision(0, 0, 100, 100, true, 1) {
		t.Error("kill zone ignored")
	}
	if log.hurts != 1 || log.kills != 1 {
		t.Errorf("hurts=%d kills=%d, want 1/1", log.hurts, log.kills)
	}
}

func TestHurtCollisionWithoutCapability(t *testing.T) {
	b := NewBody(8, 8)
	b.Exist = true
	if b.HurtCollision(-10, -10, 20, 20, true, 1) {
		t.Error("body without Hurter was hurt")
	}
}

func TestOverlaps(t *testing.T) {
	a := NewBody(8, 8)
	a.Exist = true
	b := NewBody(8, 8)
	b.Exist = true
	b.Pos = gamemath.Vec(6, 0)

	if !a.Overlaps(b) {
		t.Error("overlapping bodies reported apart")
	}
	b.Pos.X = 8
	if a.Overlaps(b) {
		t.Error("touching bodies reported overlapping")
	}
	b.Pos.X = 4
	b.Dying = true
	if a.Overlaps(b) {
		t.Error("dying body overlapped")
	}
}

type hurterFunc func(b *Body, kill bool, dt float64)

func (f hurterFunc) Hurt(b *Body, kill bool, dt float64) { f(b, kill, dt) }
