// Package leveldata decodes Tiled stage maps into plain tile grids and a
// solid-shape table. Nothing here imports ebitengine or donburi.
package leveldata

// Layer names looked up in the TMX file.
const (
	LayerBackground = "background"
	LayerBase       = "base"
	LayerObjects    = "objects"
)

// StageData holds the decoded tile grids and the solid-shape table of a level.
type StageData struct {
	Name       string
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int
	TileHeight int

	Background LayerData
	Base       LayerData
	Objects    LayerData

	// CollisionData maps a base tile id minus one to its solid-shape code.
	CollisionData []uint8
	Spawns        []SpawnMarker
}

// LayerData is a row-major grid of global tile ids, 0 meaning empty.
type LayerData struct {
	Tiles  []int
	Width  int
	Height int
	Loop   bool // wrap lookups instead of returning 0 out of range
}

// SpawnMarker is an entity placement consumed once when the stage is built.
type SpawnMarker struct {
	Kind  int
	X, Y  float64 // top-left of the marker tile, in pixels
	TileX int
	TileY int
}
