package physics

import (
	"reflect"
	"testing"

	"github.com/automoto/tilerun/shared/gamemath"
)

// recorder implements every hook and logs the calls it receives.
type recorder struct {
	calls    []string
	dieAfter int
	dies     int
}

func (r *recorder) UpdateLogic(b *Body, dt float64) {
	r.calls = append(r.calls, "logic")
	b.Target.X = 1
}
func (r *recorder) Animate(b *Body, dt float64) { r.calls = append(r.calls, "animate") }
func (r *recorder) PostMovement(b *Body, dt float64) {
	r.calls = append(r.calls, "post")
}
func (r *recorder) HiddenAnimation(b *Body, dt float64) {
	r.calls = append(r.calls, "hidden")
}
func (r *recorder) Die(b *Body, dt float64) bool {
	r.calls = append(r.calls, "die")
	r.dies++
	return r.dies >= r.dieAfter
}

type moveRecorder struct {
	b      *Body
	before gamemath.Vector
	after  gamemath.Vector
}

func (m *moveRecorder) UpdateLogic(b *Body, dt float64)  { m.before = b.Pos }
func (m *moveRecorder) PostMovement(b *Body, dt float64) { m.after = b.Pos }

func TestUpdateOrder(t *testing.T) {
	r := &recorder{}
	b := NewBody(8, 8)
	b.Exist, b.InCamera = true, true
	b.Hooks = r

	b.Update(1)

	want := []string{"logic", "animate", "post"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestUpdateIntegratesBetweenLogicAndPostMovement(t *testing.T) {
	m := &moveRecorder{}
	b := NewBody(8, 8)
	b.Exist, b.InCamera = true, true
	b.Speed.X = 2
	b.Target.X = 2
	b.Hooks = m

	b.Update(1)

	if m.before.X != 0 {
		t.Errorf("logic saw x = %f, want 0", m.before.X)
	}
	if m.after.X != 2 {
		t.Errorf("post-movement saw x = %f, want 2", m.after.X)
	}
	if b.OldPos.X != 0 {
		t.Errorf("OldPos.X = %f, want 0", b.OldPos.X)
	}
}

func TestUpdateNonExistentIsNoop(t *testing.T) {
	r := &recorder{}
	b := NewBody(8, 8)
	b.Pos = gamemath.Vec(5, 5)
	b.Speed = gamemath.Vec(1, 1)
	b.Hooks = r

	b.Update(1)

	if len(r.calls) != 0 || b.Pos != gamemath.Vec(5, 5) || b.OldPos != (gamemath.Vector{}) {
		t.Errorf("non-existent body was updated: calls=%v pos=%v", r.calls, b.Pos)
	}
}

func TestUpdateDyingRunsOnlyDeathRoutine(t *testing.T) {
	r := &recorder{dieAfter: 3}
	b := NewBody(8, 8)
	b.Exist, b.InCamera, b.Dying = true, true, true
	b.Speed.X = 3
	b.Hooks = r

	for i := 0; i < 3; i++ {
		b.Update(1)
	}

	want := []string{"die", "die", "die"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
	if b.Exist || b.Dying {
		t.Errorf("Exist=%v Dying=%v after death routine, want false/false", b.Exist, b.Dying)
	}
	if b.Pos.X != 0 {
		t.Errorf("dying body moved to %f", b.Pos.X)
	}
}

func TestUpdateDyingWithoutHookEndsImmediately(t *testing.T) {
	b := NewBody(8, 8)
	b.Exist, b.Dying = true, true

	b.Update(1)

	if b.Exist {
		t.Error("body without death routine should stop existing")
	}
}

func TestUpdateHiddenRunsOnlyHiddenAnimation(t *testing.T) {
	r := &recorder{}
	b := NewBody(8, 8)
	b.Exist = true
	b.Speed.X = 1
	b.Hooks = r

	b.Update(1)

	if !reflect.DeepEqual(r.calls, []string{"hidden"}) {
		t.Errorf("calls = %v, want [hidden]", r.calls)
	}
	if b.Pos.X != 0 {
		t.Errorf("hidden body moved to %f", b.Pos.X)
	}
}

func TestBaseMovementScalesWithStep(t *testing.T) {
	b := NewBody(8, 8)
	b.Target = gamemath.Vec(1, 0)
	b.Friction = gamemath.Vec(0.25, 0.25)

	b.BaseMovement(2)

	if b.Speed.X != 0.5 {
		t.Errorf("Speed.X = %f, want 0.5", b.Speed.X)
	}
	if b.Pos.X != 1 {
		t.Errorf("Pos.X = %f, want 1", b.Pos.X)
	}
}

func TestBaseMovementConvergesToTarget(t *testing.T) {
	b := NewBody(8, 8)
	b.Speed = gamemath.Vec(-3, 5)
	b.Target = gamemath.Vec(1.5, 2.5)
	b.Friction = gamemath.Vec(0.1, 0.1)

	prevX, prevY := b.Speed.X, b.Speed.Y
	for i := 0; i < 200; i++ {
		b.BaseMovement(1)
		if b.Speed.X < prevX || b.Speed.X > b.Target.X {
			t.Fatalf("tick %d: speed.x %f not monotonic toward %f", i, b.Speed.X, b.Target.X)
		}
		if b.Speed.Y > prevY || b.Speed.Y < b.Target.Y {
			t.Fatalf("tick %d: speed.y %f not monotonic toward %f", i, b.Speed.Y, b.Target.Y)
		}
		prevX, prevY = b.Speed.X, b.Speed.Y
	}
	if b.Speed != b.Target {
		t.Errorf("speed = %v, want %v", b.Speed, b.Target)
	}
}
