package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// solidProperty is the tileset tile property holding the solid-shape code.
const solidProperty = "solid"

// LoadStageData parses a TMX file into stage data. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadStageData(fsys fs.FS, tmxPath string) (*StageData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &StageData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	var haveBase bool
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerBackground:
			data.Background = decodeLayer(levelMap, layer, true)
		case LayerBase:
			data.Base = decodeLayer(levelMap, layer, false)
			haveBase = true
		case LayerObjects:
			data.Objects = decodeLayer(levelMap, layer, false)
			data.Spawns = append(data.Spawns, tileMarkers(levelMap, layer)...)
		}
	}
	if !haveBase {
		return nil, fmt.Errorf("TMX %s: no %q tile layer", tmxPath, LayerBase)
	}

	data.CollisionData = collisionTable(levelMap.Tilesets)

	// Object-group spawns complement the marker tile layer.
	for _, og := range levelMap.ObjectGroups {
		if og.Name != LayerObjects && og.Name != "spawns" {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Properties.GetInt("kind")
			if kind <= 0 {
				continue
			}
			data.Spawns = append(data.Spawns, SpawnMarker{
				Kind:  kind,
				X:     o.X,
				Y:     o.Y,
				TileX: int(o.X) / levelMap.TileWidth,
				TileY: int(o.Y) / levelMap.TileHeight,
			})
		}
	}

	// Spawn left-to-right, top-to-bottom for a stable entity order.
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		if data.Spawns[i].TileY != data.Spawns[j].TileY {
			return data.Spawns[i].TileY < data.Spawns[j].TileY
		}
		return data.Spawns[i].TileX < data.Spawns[j].TileX
	})

	return data, nil
}

// LoadAllStages discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus the sorted list of names.
func LoadAllStages(fsys fs.FS, dir string) (map[string]*StageData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*StageData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadStageData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stages[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return stages, names, nil
}

func decodeLayer(m *tiled.Map, layer *tiled.Layer, loopByDefault bool) LayerData {
	ld := LayerData{
		Tiles:  make([]int, m.Width*m.Height),
		Width:  m.Width,
		Height: m.Height,
		Loop:   loopByDefault,
	}
	if layer.Properties.GetString("loop") != "" {
		ld.Loop = layer.Properties.GetBool("loop")
	}

	for i, tile := range layer.Tiles {
		if i >= len(ld.Tiles) {
			break
		}
		if tile == nil || tile.IsNil() || tile.Tileset == nil {
			continue
		}
		ld.Tiles[i] = int(tile.Tileset.FirstGID + tile.ID)
	}
	return ld
}

func tileMarkers(m *tiled.Map, layer *tiled.Layer) []SpawnMarker {
	var markers []SpawnMarker
	for i, tile := range layer.Tiles {
		if tile == nil || tile.IsNil() {
			continue
		}
		x, y := i%m.Width, i/m.Width
		markers = append(markers, SpawnMarker{
			Kind:  int(tile.ID) + 1,
			X:     float64(x * m.TileWidth),
			Y:     float64(y * m.TileHeight),
			TileX: x,
			TileY: y,
		})
	}
	return markers
}

// collisionTable builds the gid-1 indexed solid-shape table from the
// "solid" property of every tileset tile.
func collisionTable(tilesets []*tiled.Tileset) []uint8 {
	size := 0
	for _, ts := range tilesets {
		end := int(ts.FirstGID) - 1 + ts.TileCount
		for _, tile := range ts.Tiles {
			if idx := int(ts.FirstGID) + int(tile.ID); idx > end {
				end = idx
			}
		}
		size = max(size, end)
	}

	table := make([]uint8, size)
	for _, ts := range tilesets {
		for _, tile := range ts.Tiles {
			code := tile.Properties.GetInt(solidProperty)
			if code <= 0 {
				continue
			}
			table[int(ts.FirstGID)-1+int(tile.ID)] = uint8(code)
		}
	}
	return table
}
