package stage

import (
	"slices"
	"testing"

	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/physics"
)

const (
	tileBox   = 1 // code 15
	tileBump  = 2 // code 16
	tileBump2 = 3 // code 16
	tileBreak = 4 // code 17
	tileHurt  = 5 // code 18
	tileFloor = 6 // code 1
)

// testStage is 8x8 tiles: a floor row at y=6, a bump tile at (3,2), a break
// tile at (5,2) and a hurt tile at (6,5).
func testStage() *Stage {
	const w, h = 8, 8
	base := make([]int, w*h)
	for x := 0; x < w; x++ {
		base[6*w+x] = tileBox
	}
	base[2*w+3] = tileBump
	base[2*w+5] = tileBreak
	base[5*w+6] = tileHurt

	bg := make([]int, w*h)
	for i := range bg {
		bg[i] = i + 1
	}

	data := &leveldata.StageData{
		Name:          "test",
		Width:         w,
		Height:        h,
		TileWidth:     16,
		TileHeight:    16,
		Background:    leveldata.LayerData{Tiles: bg, Width: w, Height: h, Loop: true},
		Base:          leveldata.LayerData{Tiles: base, Width: w, Height: h, Loop: true},
		Objects:       leveldata.LayerData{Width: w, Height: h},
		CollisionData: []uint8{15, 16, 16, 17, 18, 1},
	}
	return New(data, DefaultConfig)
}

type spawnCall struct {
	kind ItemKind
	x, y float64
}

type spawnLog struct{ calls []spawnCall }

func (s *spawnLog) SpawnItem(kind ItemKind, x, y float64) {
	s.calls = append(s.calls, spawnCall{kind, x, y})
}

type bodyEvents struct {
	floors, ceilings, walls int
	hurts                   []bool
}

func (e *bodyEvents) FloorEvent(b *physics.Body, dt float64) {
	e.floors++
	b.Speed.Y = 0
}

func (e *bodyEvents) CeilingEvent(b *physics.Body, dt float64) {
	e.ceilings++
	b.Speed.Y = 0
}

func (e *bodyEvents) WallEvent(b *physics.Body, dir int, dt float64) {
	e.walls++
	b.Speed.X = 0
}

func (e *bodyEvents) Hurt(b *physics.Body, instantKill bool, dt float64) {
	e.hurts = append(e.hurts, instantKill)
	if instantKill {
		b.Kill()
	}
}

// newFeet returns an 8x16 body whose Pos is the middle of its bottom edge.
func newFeet(x, y float64, hooks any) *physics.Body {
	b := physics.NewBody(8, 16)
	b.Center = gamemath.Vec(0, 8)
	b.Pos = gamemath.Vec(x, y)
	b.OldPos = b.Pos
	b.Exist = true
	b.InCamera = true
	b.Hooks = hooks
	return b
}

func TestSolidCodeBounds(t *testing.T) {
	s := testStage()

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"box", 0, 6, 15},
		{"bump", 3, 2, CodeBump},
		{"break", 5, 2, CodeBreak},
		{"hurt", 6, 5, CodeHurt},
		{"empty", 0, 0, CodeNone},
		{"left of grid", -1, 6, CodeNone},
		{"right of grid", 8, 6, CodeNone},
		{"below grid", 0, 14, CodeNone},
		{"above grid", 0, -2, CodeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.SolidCode(tt.x, tt.y); got != tt.want {
				t.Errorf("SolidCode(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSolidCodeUnknownTile(t *testing.T) {
	s := testStage()
	s.Layer(LayerBase).Set(1, 1, 99)
	if got := s.SolidCode(1, 1); got != CodeNone {
		t.Errorf("SolidCode of unknown id = %d, want 0", got)
	}
}

func TestLayerAddressing(t *testing.T) {
	s := testStage()

	if s.Layer(LayerBase).Addressing != Bounded {
		t.Errorf("base addressing = %v, want bounded", s.Layer(LayerBase).Addressing)
	}
	if got, want := s.Tile(LayerBackground, -1, 0), s.Tile(LayerBackground, 7, 0); got != want {
		t.Errorf("wrapped tile = %d, want %d", got, want)
	}
	if got, want := s.Tile(LayerBackground, 3, 9), s.Tile(LayerBackground, 3, 1); got != want {
		t.Errorf("wrapped tile = %d, want %d", got, want)
	}
	if got := s.Tile(LayerBase, -1, 6); got != 0 {
		t.Errorf("bounded tile outside grid = %d, want 0", got)
	}
}

func TestShapeTable(t *testing.T) {
	tests := []struct {
		code uint8
		want shape
	}{
		{1, shapeFloor},
		{2, shapeWallRight},
		{3, shapeCeiling},
		{4, shapeWallLeft},
		{15, shapeFloor | shapeCeiling | shapeWallLeft | shapeWallRight},
		{CodeBump, shapeFloor | shapeCeiling | shapeWallLeft | shapeWallRight},
		{CodeBreak, shapeFloor | shapeCeiling | shapeWallLeft | shapeWallRight},
		{CodeHurt, 0},
		{CodeNone, 0},
		{200, 0},
	}
	for _, tt := range tests {
		if got := shapeOf(tt.code); got != tt.want {
			t.Errorf("shapeOf(%d) = %04b, want %04b", tt.code, got, tt.want)
		}
	}
}

// hitFromBelow puts a rising body just under the bottom edge of row 2.
func hitFromBelow(s *Stage, tileX int, sp Spawner) (*physics.Body, *bodyEvents) {
	ev := &bodyEvents{}
	b := newFeet(float64(tileX*16+8), 63, ev)
	b.Speed.Y = -3
	s.ObjectCollision(b, sp, 1)
	return b, ev
}

func TestBumpIncrementsOnlyThatTile(t *testing.T) {
	s := testStage()
	before := s.Snapshot()
	sp := &spawnLog{}

	b, ev := hitFromBelow(s, 3, sp)

	if ev.ceilings != 1 {
		t.Fatalf("ceiling events = %d, want 1", ev.ceilings)
	}
	if b.Pos.Y != 64 {
		t.Errorf("Pos.Y = %v, want 64", b.Pos.Y)
	}

	after := s.Snapshot()
	for i := range before {
		want := before[i]
		if i == 2*s.Width+3 {
			want++
		}
		if after[i] != want {
			t.Errorf("tile %d = %d, want %d", i, after[i], want)
		}
	}
	if got := s.Tile(LayerBase, 3, 2); got != tileBump2 {
		t.Errorf("bumped tile = %d, want %d", got, tileBump2)
	}

	want := []spawnCall{{ItemBump, 56, 32}}
	if !slices.Equal(sp.calls, want) {
		t.Errorf("spawns = %v, want %v", sp.calls, want)
	}
	if s.ActiveEffects() != 0 {
		t.Errorf("bump created %d effects", s.ActiveEffects())
	}
}

func TestBreakZeroesTileAndCreatesOneEffect(t *testing.T) {
	s := testStage()
	before := s.Snapshot()
	sp := &spawnLog{}

	hitFromBelow(s, 5, sp)

	after := s.Snapshot()
	for i := range before {
		want := before[i]
		if i == 2*s.Width+5 {
			want = 0
		}
		if after[i] != want {
			t.Errorf("tile %d = %d, want %d", i, after[i], want)
		}
	}

	if n := s.ActiveEffects(); n != 1 {
		t.Fatalf("active effects = %d, want 1", n)
	}
	e := s.Effects()[0]
	if e.Pos != gamemath.Vec(80, 32) || e.TileID != tileBreak {
		t.Errorf("effect = %+v, want tile %d at (80,32)", e, tileBreak)
	}

	want := []spawnCall{{ItemBreak, 88, 32}}
	if !slices.Equal(sp.calls, want) {
		t.Errorf("spawns = %v, want %v", sp.calls, want)
	}
}

func TestBreakWithoutSpawner(t *testing.T) {
	s := testStage()
	hitFromBelow(s, 5, nil)
	if s.Tile(LayerBase, 5, 2) != 0 {
		t.Error("break tile not cleared")
	}
}

func TestBumpIgnoresFallingBody(t *testing.T) {
	s := testStage()
	sp := &spawnLog{}
	b := newFeet(56, 63, &bodyEvents{})
	b.Speed.Y = 1

	s.ObjectCollision(b, sp, 1)

	if s.Tile(LayerBase, 3, 2) != tileBump || len(sp.calls) != 0 {
		t.Error("falling body triggered a bump")
	}
}

func TestEffectsRecycle(t *testing.T) {
	s := testStage()
	hitFromBelow(s, 5, nil)

	for range 40 {
		s.Update(1)
	}
	if n := s.ActiveEffects(); n != 0 {
		t.Fatalf("active effects after fade = %d, want 0", n)
	}

	s.Reset()
	hitFromBelow(s, 5, nil)
	if len(s.Effects()) != 1 {
		t.Errorf("effect arena grew to %d, want slot reuse", len(s.Effects()))
	}
}

func TestEffectFallsAndFades(t *testing.T) {
	s := testStage()
	hitFromBelow(s, 5, nil)
	e := s.Effects()[0]

	s.Update(1)
	if e.Pos.Y >= 32 {
		t.Errorf("effect Pos.Y = %v, want it to pop up first", e.Pos.Y)
	}
	if e.Alpha >= 1 || e.Alpha <= 0 {
		t.Errorf("effect Alpha = %v, want fading", e.Alpha)
	}
}

func TestResetRestoresAuthoredTiles(t *testing.T) {
	s := testStage()
	authored := s.Snapshot()

	hitFromBelow(s, 3, nil)
	hitFromBelow(s, 3, nil)
	hitFromBelow(s, 5, nil)
	if slices.Equal(s.Snapshot(), authored) {
		t.Fatal("setup did not mutate the stage")
	}

	s.Reset()

	if !slices.Equal(s.Snapshot(), authored) {
		t.Errorf("after Reset = %v, want %v", s.Snapshot(), authored)
	}
	if s.ActiveEffects() != 0 {
		t.Error("Reset kept running effects")
	}
}

func TestObjectCollisionSkipsInactiveBodies(t *testing.T) {
	s := testStage()
	sp := &spawnLog{}

	gone := newFeet(56, 63, &bodyEvents{})
	gone.Speed.Y = -3
	gone.Exist = false
	s.ObjectCollision(gone, sp, 1)

	dying := newFeet(56, 63, &bodyEvents{})
	dying.Speed.Y = -3
	dying.Dying = true
	s.ObjectCollision(dying, sp, 1)

	if len(sp.calls) != 0 || s.Tile(LayerBase, 3, 2) != tileBump {
		t.Error("inactive body collided with the stage")
	}
}

func TestBorderWalls(t *testing.T) {
	s := testStage()

	left := newFeet(2, 40, &bodyEvents{})
	left.OldPos.X = 5
	left.Speed.X = -3
	s.ObjectCollision(left, nil, 1)
	if left.Pos.X != 4 {
		t.Errorf("left border Pos.X = %v, want 4", left.Pos.X)
	}

	right := newFeet(126, 40, &bodyEvents{})
	right.OldPos.X = 123
	right.Speed.X = 3
	s.ObjectCollision(right, nil, 1)
	if right.Pos.X != 124 {
		t.Errorf("right border Pos.X = %v, want 124", right.Pos.X)
	}

	// Jumping above the stage does not clear the border.
	high := newFeet(2, -60, &bodyEvents{})
	high.OldPos.X = 5
	high.Speed.X = -3
	s.ObjectCollision(high, nil, 1)
	if high.Pos.X != 4 {
		t.Errorf("border above stage Pos.X = %v, want 4", high.Pos.X)
	}
}

func TestLandingAcrossFloorSeam(t *testing.T) {
	for _, dir := range []float64{-1, 1} {
		s := testStage()
		ev := &bodyEvents{}
		// Feet sunk 2.5 px into the floor row, next to the seam at x=48.
		b := newFeet(52.5, 98.5, ev)
		b.Speed = gamemath.Vec(dir, 3)

		s.ObjectCollision(b, nil, 1)

		if ev.floors != 1 {
			t.Errorf("dir %v: floor events = %d, want 1", dir, ev.floors)
		}
		if ev.walls != 0 {
			t.Errorf("dir %v: wall events = %d, want 0", dir, ev.walls)
		}
		if b.Pos.Y != 96 {
			t.Errorf("dir %v: Pos.Y = %v, want 96", dir, b.Pos.Y)
		}
		if b.Speed.X != dir {
			t.Errorf("dir %v: Speed.X = %v, want it kept", dir, b.Speed.X)
		}
	}
}

func TestWallBesideOpenCellStillBlocks(t *testing.T) {
	s := testStage()
	// A lone block standing on the floor row.
	s.Layer(LayerBase).Set(4, 5, tileBox)

	b := newFeet(58, 96, &bodyEvents{})
	b.OldPos.X = 58
	b.Pos.X = 62
	b.Speed.X = 4
	s.ObjectCollision(b, nil, 1)

	if b.Pos.X != 60 {
		t.Errorf("Pos.X = %v, want 60 against the block", b.Pos.X)
	}
}

func TestPitKillsHurters(t *testing.T) {
	s := testStage()
	ev := &bodyEvents{}
	b := newFeet(40, s.PixelHeight()+40, ev)

	s.ObjectCollision(b, nil, 1)

	if len(ev.hurts) != 1 || !ev.hurts[0] {
		t.Fatalf("hurts = %v, want one instant kill", ev.hurts)
	}
	if !b.Dying {
		t.Error("body should be dying")
	}
}

type floorOnly struct{ floors int }

func (f *floorOnly) FloorEvent(b *physics.Body, dt float64) { f.floors++ }

func TestPitIgnoresBodiesWithoutHurt(t *testing.T) {
	s := testStage()
	b := newFeet(40, s.PixelHeight()+40, &floorOnly{})

	s.ObjectCollision(b, nil, 1)

	if !b.Active() {
		t.Error("body without hurt capability was killed")
	}
}

func TestHurtTile(t *testing.T) {
	s := testStage()
	ev := &bodyEvents{}
	b := newFeet(104, 90, ev)

	s.ObjectCollision(b, nil, 1)

	if len(ev.hurts) != 1 || ev.hurts[0] {
		t.Errorf("hurts = %v, want one non-lethal hurt", ev.hurts)
	}
	if ev.floors != 0 || ev.walls != 0 || ev.ceilings != 0 {
		t.Errorf("hurt tile ran edge checks: %+v", ev)
	}
}

func TestFallLandsOnFloor(t *testing.T) {
	s := testStage()
	ev := &bodyEvents{}

	// Bottom edge 40 px above the floor surface at y=96.
	b := newFeet(40, 56, ev)
	b.Target.Y = 2.5
	b.Friction.Y = 0.1

	landed := -1
	for tick := range 120 {
		b.Update(1)
		s.ObjectCollision(b, nil, 1)

		if landed < 0 && ev.floors > 0 {
			landed = tick
			if ev.floors != 1 {
				t.Errorf("floor events on landing tick = %d, want 1", ev.floors)
			}
			if b.Speed.Y != 0 {
				t.Errorf("Speed.Y on landing tick = %v, want 0", b.Speed.Y)
			}
		}
		if b.Pos.Y > 96 {
			t.Fatalf("tick %d: Pos.Y = %v sank below the floor", tick, b.Pos.Y)
		}
	}

	if landed < 0 {
		t.Fatal("body never landed")
	}
	if b.Pos.Y != 96 {
		t.Errorf("resting Pos.Y = %v, want 96", b.Pos.Y)
	}
}

func TestPixelSize(t *testing.T) {
	s := testStage()
	if s.PixelWidth() != 128 || s.PixelHeight() != 128 {
		t.Errorf("pixel size = %vx%v, want 128x128", s.PixelWidth(), s.PixelHeight())
	}
	if s.TileSize() != 16 {
		t.Errorf("TileSize = %d, want 16", s.TileSize())
	}
}
