package stage

import (
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/leveldata"
)

// Addressing selects how a layer answers lookups outside its grid.
type Addressing int

const (
	// Bounded returns 0 for any cell outside the grid.
	Bounded Addressing = iota
	// Wrap repeats the grid in both directions.
	Wrap
)

func (a Addressing) String() string {
	if a == Wrap {
		return "wrap"
	}
	return "bounded"
}

// LayerID names the tile layers of a stage.
type LayerID int

const (
	LayerBackground LayerID = iota
	LayerBase
	LayerObjects
	layerCount
)

// Layer is a mutable row-major grid of tile ids.
type Layer struct {
	Width      int
	Height     int
	Addressing Addressing
	data       []int
}

func newLayer(ld leveldata.LayerData) *Layer {
	l := &Layer{
		Width:  ld.Width,
		Height: ld.Height,
		data:   make([]int, ld.Width*ld.Height),
	}
	if ld.Loop {
		l.Addressing = Wrap
	}
	copy(l.data, ld.Tiles)
	return l
}

func (l *Layer) index(x, y int) (int, bool) {
	if l.Width <= 0 || l.Height <= 0 {
		return 0, false
	}
	if l.Addressing == Wrap {
		x = gamemath.NegMod(x, l.Width)
		y = gamemath.NegMod(y, l.Height)
	} else if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0, false
	}
	return y*l.Width + x, true
}

// Tile returns the tile id at (x, y) under the layer's addressing mode.
func (l *Layer) Tile(x, y int) int {
	i, ok := l.index(x, y)
	if !ok {
		return 0
	}
	return l.data[i]
}

// Set stores a tile id. Writes outside a bounded layer are ignored.
func (l *Layer) Set(x, y, id int) {
	if i, ok := l.index(x, y); ok {
		l.data[i] = id
	}
}

// Data returns a copy of the grid.
func (l *Layer) Data() []int {
	return append([]int(nil), l.data...)
}
