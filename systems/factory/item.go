package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem adds an item entity that does not exist yet.
func CreateItem(ecs *ecs.ECS, kind behaviors.ItemKind) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	body, c := behaviors.NewCollectable(kind)
	components.Item.SetValue(item, components.ItemData{Collectable: c})
	setObject(ecs, item, body, tags.ResolvItem)

	return item
}

// PlaceItem puts a resting item centered on (x, y).
func PlaceItem(ecs *ecs.ECS, kind behaviors.ItemKind, x, y float64) *donburi.Entry {
	entry := freeItem(ecs, kind)
	obj := components.Object.Get(entry)
	components.Item.Get(entry).Place(obj.Body, kind, x, y)
	obj.SyncShape()
	return entry
}

// SpawnItem pops an item out of a tile, centered on (x, y).
func SpawnItem(ecs *ecs.ECS, kind behaviors.ItemKind, x, y float64) *donburi.Entry {
	entry := freeItem(ecs, kind)
	obj := components.Object.Get(entry)
	components.Item.Get(entry).Spawn(obj.Body, kind, x, y, cfg.Item.SpawnJump)
	obj.SyncShape()
	return entry
}

// freeItem reuses an item whose body no longer exists before creating a new
// entity.
func freeItem(ecs *ecs.ECS, kind behaviors.ItemKind) *donburi.Entry {
	var free *donburi.Entry
	tags.Item.Each(ecs.World, func(entry *donburi.Entry) {
		if free == nil && !components.Object.Get(entry).Exist {
			free = entry
		}
	})
	if free != nil {
		return free
	}
	return CreateItem(ecs, kind)
}
