package factory

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/stage"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Spawn marker kinds placed on the objects layer.
const (
	MarkerPlayer = 1
	MarkerWalker = 2
	MarkerHopper = 3
	MarkerCoin   = 4
	MarkerHeart  = 5
	MarkerFlag   = 6
)

// CreateLevel loads every stage in dir, builds the one called name and
// spawns its entities. An empty name picks the first stage.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, dir, name string) (*donburi.Entry, error) {
	stages, names, err := leveldata.LoadAllStages(fsys, dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = names[0]
	}
	index := slices.Index(names, name)
	if index < 0 {
		return nil, fmt.Errorf("stage %q not found in %s (have %v)", name, dir, names)
	}
	return CreateLevelFromData(ecs, stages[name], names, index)
}

// CreateLevelFromData builds the stage, contact space, camera and clock for
// already decoded level data and spawns its entities.
func CreateLevelFromData(ecs *ecs.ECS, data *leveldata.StageData, names []string, index int) (*donburi.Entry, error) {
	player, ok := playerMarker(data)
	if !ok {
		return nil, fmt.Errorf("stage %q has no player spawn", data.Name)
	}

	st := stage.New(data, cfg.StageConfig())
	level := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(level, components.StageData{
		Stage:  st,
		Source: data,
		Names:  names,
		Index:  index,
	})

	ts := st.TileSize()
	CreateSpace(ecs, int(st.PixelWidth()), int(st.PixelHeight()), ts, ts)

	px, py := markerFeet(player, ts)
	cam := CreateCamera(ecs, px, py)
	components.Camera.Get(cam).Restrict(st)

	if _, ok := components.Clock.First(ecs.World); !ok {
		clock := archetypes.Clock.Spawn(ecs)
		components.Clock.SetValue(clock, components.ClockData{Dt: 1})
	}
	if _, ok := components.Input.First(ecs.World); !ok {
		archetypes.Input.Spawn(ecs)
	}

	CreatePlayer(ecs, px, py)
	SpawnMarkers(ecs)

	return level, nil
}

// SpawnMarkers turns the non-player markers of the current stage into
// enemies, items and checkpoint flags. Flags the player's respawn point has
// already passed start raised.
func SpawnMarkers(ecs *ecs.ECS) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	sd := components.Stage.Get(entry)
	ts := sd.TileSize()
	markers := sd.Source.Spawns
	sd.Spawned = true

	var respawn *gamemath.Vector
	if p, ok := tags.Player.First(ecs.World); ok {
		respawn = &components.Player.Get(p).Spawn
	}

	for _, m := range markers {
		x, y := markerFeet(m, ts)
		half := cfg.Item.HitboxSize / 2
		switch m.Kind {
		case MarkerWalker:
			CreateEnemy(ecs, components.EnemyWalker, x, y)
		case MarkerHopper:
			CreateEnemy(ecs, components.EnemyHopper, x, y)
		case MarkerCoin:
			PlaceItem(ecs, behaviors.ItemCoin, x, y-half)
		case MarkerHeart:
			PlaceItem(ecs, behaviors.ItemHeart, x, y-half)
		case MarkerFlag:
			CreateFlag(ecs, x, y, respawn != nil && respawn.X >= x)
		}
	}
}

// ResetLevel restores the authored tiles, clears enemies, items and flags,
// puts the player back on its spawn with its boomerang in hand and spawns
// the markers again.
func ResetLevel(ecs *ecs.ECS) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	st := components.Stage.Get(entry).Stage
	st.Reset()

	var doomed []*donburi.Entry
	collect := func(e *donburi.Entry) { doomed = append(doomed, e) }
	tags.Enemy.Each(ecs.World, collect)
	tags.Item.Each(ecs.World, collect)
	tags.Flag.Each(ecs.World, collect)
	for _, e := range doomed {
		removeShape(ecs, components.Object.Get(e).Shape)
		ecs.World.Remove(e.Entity())
	}
	DropBoomerangs(ecs)

	if p, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(p)
		components.Player.Get(p).Respawn(obj.Body)
		obj.SyncShape()
		if c, ok := components.Camera.First(ecs.World); ok {
			cam := components.Camera.Get(c)
			cam.Pos = obj.Pos
			cam.Look = gamemath.Vector{}
			cam.LookTarget = gamemath.Vector{}
			cam.Restrict(st)
		}
	}

	SpawnMarkers(ecs)
}

func playerMarker(data *leveldata.StageData) (leveldata.SpawnMarker, bool) {
	for _, m := range data.Spawns {
		if m.Kind == MarkerPlayer {
			return m, true
		}
	}
	return leveldata.SpawnMarker{}, false
}

// markerFeet is the bottom center of the marker's cell.
func markerFeet(m leveldata.SpawnMarker, ts int) (float64, float64) {
	return float64(m.TileX*ts + ts/2), float64((m.TileY + 1) * ts)
}
