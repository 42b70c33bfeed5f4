package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/physics"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy with its feet at (x, y).
func CreateEnemy(ecs *ecs.ECS, kind components.EnemyKind, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	var body *physics.Body
	switch kind {
	case components.EnemyHopper:
		body, _ = behaviors.NewHopper(x, y)
	default:
		body, _ = behaviors.NewWalker(x, y, cfg.Physics.TileSize)
	}
	components.Enemy.SetValue(enemy, components.EnemyData{Kind: kind})
	setObject(ecs, enemy, body, tags.ResolvEnemy)

	return enemy
}

// setObject wraps a body in its contact shape and stores both on the entry.
// The shape points back at the body, whose address is stable unlike the
// component storage.
func setObject(ecs *ecs.ECS, entry *donburi.Entry, body *physics.Body, tag string) {
	x, y, w, h := body.Rect()
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.Data = body
	addShape(ecs, obj)
	components.Object.SetValue(entry, components.ObjectData{Body: body, Shape: obj})
}
