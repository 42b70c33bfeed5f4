package systems

import (
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/camera"
	"github.com/automoto/tilerun/shared/physics"
	"github.com/automoto/tilerun/shared/stage"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type spawnRequest struct {
	kind behaviors.ItemKind
	x, y float64
}

// itemSpawner queues bump and break requests raised during the object pass.
// Entities are only created once the pass is over.
type itemSpawner struct {
	queue []spawnRequest
	cam   *camera.Camera
}

func (s *itemSpawner) SpawnItem(kind stage.ItemKind, x, y float64) {
	item := behaviors.ItemCoin
	if kind == stage.ItemBreak {
		item = behaviors.ItemHeart
		if s.cam != nil {
			s.cam.Shake(cfg.ScreenShake.BreakIntensity, cfg.ScreenShake.BreakDuration)
		}
	}
	// y is the top of the tile; the item starts resting on it.
	s.queue = append(s.queue, spawnRequest{kind: item, x: x, y: y - cfg.Item.HitboxSize/2})
}

func (s *itemSpawner) flush(ecs *ecs.ECS) {
	for _, r := range s.queue {
		factory.SpawnItem(ecs, r.kind, r.x, r.y)
	}
	s.queue = s.queue[:0]
	s.cam = nil
}

var (
	spawner itemSpawner
	// Reused between ticks to snapshot a group before updating it.
	groupBuf []*donburi.Entry
)

// UpdateObjects runs one tick of every body: the player and its boomerangs
// first, then items, then enemies, then checkpoint flags. Everything after
// the player is checked against the camera and the player before it moves,
// and touches the player after. Enemies are also hit by boomerangs.
func UpdateObjects(ecs *ecs.ECS) {
	stageEntry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	st := components.Stage.Get(stageEntry).Stage
	dt := GetOrCreateClock(ecs).Dt

	var cam *camera.Camera
	if entry, ok := components.Camera.First(ecs.World); ok {
		cam = components.Camera.Get(entry)
	}
	spawner.cam = cam

	player := updatePlayer(ecs, st, cam, dt)
	updateGroup(ecs, tags.Item, st, cam, player, dt, tags.ResolvPlayer)
	updateGroup(ecs, tags.Enemy, st, cam, player, dt, tags.ResolvPlayer, tags.ResolvBoomerang)
	updateGroup(ecs, tags.Flag, st, cam, player, dt)

	spawner.flush(ecs)
}

func updatePlayer(ecs *ecs.ECS, st *stage.Stage, cam *camera.Camera, dt float64) *physics.Body {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	obj := components.Object.Get(entry)
	p := components.Player.Get(entry)
	p.Controls = getOrCreateInput(ecs)

	b := obj.Body
	b.InCamera = true
	b.Update(dt)
	st.ObjectCollision(b, &spawner, dt)
	obj.SyncShape()

	if p.ThrowRequested && b.Active() {
		factory.ThrowBoomerang(ecs, entry)
	}
	updateBoomerangs(ecs, st, dt)

	if cam != nil && b.Exist {
		cam.FollowObject(b, st, dt)
	}
	return b
}

// updateBoomerangs moves the boomerangs in flight and resolves them against
// the stage right after their owner.
func updateBoomerangs(ecs *ecs.ECS, st *stage.Stage, dt float64) {
	tags.Boomerang.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		b := obj.Body
		if !b.Exist {
			return
		}
		b.Update(dt)
		st.ObjectCollision(b, &spawner, dt)
		obj.SyncShape()
	})
}

func updateGroup(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag], st *stage.Stage, cam *camera.Camera, player *physics.Body, dt float64, contacts ...string) {
	groupBuf = groupBuf[:0]
	tag.Each(ecs.World, func(entry *donburi.Entry) {
		groupBuf = append(groupBuf, entry)
	})

	for _, entry := range groupBuf {
		obj := components.Object.Get(entry)
		b := obj.Body
		if !b.Exist {
			continue
		}

		if cam != nil {
			cam.CheckBody(b)
		}
		if pc, ok := b.Hooks.(physics.PlayerChecker); ok && player != nil {
			pc.CheckPlayer(b, player, dt)
		}

		b.Update(dt)
		st.ObjectCollision(b, &spawner, dt)
		obj.SyncShape()

		touch(obj, dt, contacts...)
	}
}

// touch finds bodies with the given contact tags through the contact space
// and runs the hostile collision hook for the first real hitbox overlap.
func touch(obj *components.ObjectData, dt float64, contacts ...string) {
	b := obj.Body
	hc, ok := b.Hooks.(physics.HostileCollider)
	if !ok || len(contacts) == 0 || !b.Active() || obj.Shape == nil || obj.Shape.Space == nil {
		return
	}

	c := obj.Shape.Check(0, 0, contacts...)
	if c == nil {
		return
	}
	for _, o := range c.ObjectsByTags(contacts...) {
		other, ok := o.Data.(*physics.Body)
		if !ok || !other.Active() || !b.Overlaps(other) {
			continue
		}
		hc.HostileCollision(b, other, dt)
		return
	}
}
