// Package stage drives tile collision for game object bodies: it scans the
// cells around a body, runs the edge checks matching each solid code and
// applies the bump, break and hurt tile rules.
package stage

import (
	"math"

	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/physics"
)

// ItemKind is the opaque tag passed to a Spawner. The spawner decides which
// entity it becomes.
type ItemKind int

const (
	ItemBump ItemKind = iota
	ItemBreak
)

// Spawner receives item requests from bump and break tiles.
type Spawner interface {
	SpawnItem(kind ItemKind, x, y float64)
}

// Config holds the tunables of the collision driver.
type Config struct {
	TileSize int
	// ScanMargin is the number of cells scanned on each side of a body.
	ScanMargin int
	// PitOffset is the distance below the stage where the kill zone starts.
	PitOffset float64
	Effect    EffectConfig
}

// DefaultConfig matches the 16 px tile grid the movement constants assume.
var DefaultConfig = Config{
	TileSize:   16,
	ScanMargin: 2,
	PitOffset:  16,
	Effect:     DefaultEffectConfig,
}

// pitDepth is large enough that no body can fall past the kill zone.
const pitDepth = 1 << 20

// Stage owns the tile layers of a level and the solid-shape table.
type Stage struct {
	Name   string
	Width  int // in tiles
	Height int // in tiles

	cfg           Config
	layers        [layerCount]*Layer
	authored      [layerCount][]int
	collisionData []uint8
	effects       []*Effect
}

// New builds a stage from decoded level data. A tile size in the data
// overrides the configured one.
func New(data *leveldata.StageData, cfg Config) *Stage {
	if data.TileWidth > 0 {
		cfg.TileSize = data.TileWidth
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultConfig.TileSize
	}

	s := &Stage{
		Name:          data.Name,
		Width:         data.Width,
		Height:        data.Height,
		cfg:           cfg,
		collisionData: append([]uint8(nil), data.CollisionData...),
	}

	for id, ld := range [layerCount]leveldata.LayerData{
		LayerBackground: data.Background,
		LayerBase:       data.Base,
		LayerObjects:    data.Objects,
	} {
		if ld.Width == 0 && ld.Height == 0 {
			ld.Width, ld.Height = data.Width, data.Height
		}
		s.layers[id] = newLayer(ld)
		s.authored[id] = s.layers[id].Data()
	}

	// Collision always reads the base layer through bounded lookups.
	s.layers[LayerBase].Addressing = Bounded
	return s
}

// TileSize returns the cell size in pixels.
func (s *Stage) TileSize() int { return s.cfg.TileSize }

// PixelWidth returns the stage width in pixels.
func (s *Stage) PixelWidth() float64 { return float64(s.Width * s.cfg.TileSize) }

// PixelHeight returns the stage height in pixels.
func (s *Stage) PixelHeight() float64 { return float64(s.Height * s.cfg.TileSize) }

// Layer returns one of the tile layers.
func (s *Stage) Layer(id LayerID) *Layer { return s.layers[id] }

// Tile returns the id stored in a layer cell.
func (s *Stage) Tile(id LayerID, x, y int) int { return s.layers[id].Tile(x, y) }

// SolidCode returns the solid-shape code of a base cell, CodeNone for empty
// cells, cells outside the grid and ids the table does not know.
func (s *Stage) SolidCode(x, y int) uint8 {
	id := s.layers[LayerBase].Tile(x, y)
	if id <= 0 || id > len(s.collisionData) {
		return CodeNone
	}
	return s.collisionData[id-1]
}

// Effects returns the effect arena, including recycled slots.
func (s *Stage) Effects() []*Effect { return s.effects }

// ActiveEffects counts the running breaking-tile effects.
func (s *Stage) ActiveEffects() int {
	n := 0
	for _, e := range s.effects {
		if e.Exist {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the current base layer.
func (s *Stage) Snapshot() []int {
	return s.layers[LayerBase].Data()
}

// Reset restores every layer to its authored state and drops all effects.
func (s *Stage) Reset() {
	for id, l := range s.layers {
		copy(l.data, s.authored[id])
	}
	for _, e := range s.effects {
		e.Exist = false
	}
}

// Update advances the breaking-tile effects.
func (s *Stage) Update(dt float64) {
	for _, e := range s.effects {
		e.update(dt)
	}
}

// ObjectCollision resolves a body against the cells around it, then against
// the stage borders and the pit below the stage. The spawner may be nil.
func (s *Stage) ObjectCollision(b *physics.Body, sp Spawner, dt float64) {
	if !b.Active() {
		return
	}

	ts := float64(s.cfg.TileSize)
	m := s.cfg.ScanMargin
	cx := int(math.Floor(b.Pos.X / ts))
	cy := int(math.Floor(b.Pos.Y / ts))

	for y := cy - m; y <= cy+m; y++ {
		for x := cx - m; x <= cx+m; x++ {
			code := s.SolidCode(x, y)
			if code == CodeNone {
				continue
			}
			s.tileCollision(b, x, y, code, sp, dt)
			if !b.Active() {
				return
			}
		}
	}

	s.borderCollision(b, dt)
}

func (s *Stage) tileCollision(b *physics.Body, x, y int, code uint8, sp Spawner, dt float64) {
	ts := float64(s.cfg.TileSize)
	tx, ty := float64(x)*ts, float64(y)*ts

	if code == CodeHurt {
		b.HurtCollision(tx, ty, ts, ts, false, dt)
		return
	}

	sh := shapeOf(code)
	if sh&shapeFloor != 0 {
		b.FloorCollision(tx, ty, ts, dt)
	}
	if sh&shapeCeiling != 0 && b.CeilingCollision(tx, ty+ts, ts, dt) {
		switch code {
		case CodeBump:
			s.bump(x, y, sp)
		case CodeBreak:
			s.breakTile(x, y, sp)
		}
	}
	// A face backed by the neighbour's opposite wall is inside solid ground.
	if sh&shapeWallLeft != 0 && s.shapeAt(x-1, y)&shapeWallRight == 0 {
		b.WallCollision(tx, ty, ts, 1, dt)
	}
	if sh&shapeWallRight != 0 && s.shapeAt(x+1, y)&shapeWallLeft == 0 {
		b.WallCollision(tx+ts, ty, ts, -1, dt)
	}
}

func (s *Stage) shapeAt(x, y int) shape {
	return shapeOf(s.SolidCode(x, y))
}

func (s *Stage) bump(x, y int, sp Spawner) {
	base := s.layers[LayerBase]
	base.Set(x, y, base.Tile(x, y)+1)
	s.spawnItem(ItemBump, x, y, sp)
}

func (s *Stage) breakTile(x, y int, sp Spawner) {
	base := s.layers[LayerBase]
	id := base.Tile(x, y)
	base.Set(x, y, 0)

	ts := float64(s.cfg.TileSize)
	s.newEffect().start(float64(x)*ts, float64(y)*ts, id, s.cfg.Effect)
	s.spawnItem(ItemBreak, x, y, sp)
}

// spawnItem requests an item centered on the top edge of the cell.
func (s *Stage) spawnItem(kind ItemKind, x, y int, sp Spawner) {
	if sp == nil {
		return
	}
	ts := float64(s.cfg.TileSize)
	sp.SpawnItem(kind, float64(x)*ts+ts/2, float64(y)*ts)
}

func (s *Stage) borderCollision(b *physics.Body, dt float64) {
	h := s.PixelHeight()
	w := s.PixelWidth()

	// The borders extend above the stage so jumps cannot clear them.
	b.WallCollision(0, -h, h*3, -1, dt)
	b.WallCollision(w, -h, h*3, 1, dt)

	ts := float64(s.cfg.TileSize)
	b.HurtCollision(-ts, h+s.cfg.PitOffset, w+ts*2, pitDepth, true, dt)
}

// newEffect returns a recycled effect slot or grows the arena.
func (s *Stage) newEffect() *Effect {
	for _, e := range s.effects {
		if !e.Exist {
			return e
		}
	}
	e := &Effect{}
	s.effects = append(s.effects, e)
	return e
}
