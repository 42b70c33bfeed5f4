package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/physics"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoomerang adds a held boomerang for owner to the pool.
func CreateBoomerang(ecs *ecs.ECS, owner *physics.Body) *donburi.Entry {
	entry := archetypes.Boomerang.Spawn(ecs)

	body, r := behaviors.NewBoomerang(owner)
	components.Boomerang.SetValue(entry, components.BoomerangData{Boomerang: r})
	setObject(ecs, entry, body, tags.ResolvBoomerang)

	return entry
}

// ThrowBoomerang throws a pooled boomerang from the player in the direction
// it faces. It returns nil when as many boomerangs as allowed are out.
func ThrowBoomerang(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	owner := components.Object.Get(player).Body
	facing := components.Player.Get(player).Facing

	var free *donburi.Entry
	out := 0
	tags.Boomerang.Each(ecs.World, func(entry *donburi.Entry) {
		switch {
		case components.Object.Get(entry).Exist:
			out++
		case free == nil:
			free = entry
		}
	})
	if out >= cfg.Boomerang.MaxActive {
		return nil
	}
	if free == nil {
		free = CreateBoomerang(ecs, owner)
	}

	obj := components.Object.Get(free)
	r := components.Boomerang.Get(free)
	r.Owner = owner
	if !r.Throw(obj.Body, facing) {
		return nil
	}
	obj.SyncShape()
	return free
}

// DropBoomerangs puts every boomerang in flight back in the player's hand.
func DropBoomerangs(ecs *ecs.ECS) {
	tags.Boomerang.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		components.Boomerang.Get(entry).Drop(obj.Body)
		obj.SyncShape()
	})
}
