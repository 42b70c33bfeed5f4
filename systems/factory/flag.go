package factory

import (
	"log"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/behaviors"
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFlag plants a checkpoint flag with its foot at (x, y). An active
// flag has already been passed and stays raised.
func CreateFlag(ecs *ecs.ECS, x, y float64, active bool) *donburi.Entry {
	entry := archetypes.Flag.Spawn(ecs)

	body, f := behaviors.NewFlag(x, y, active)
	f.OnActivate = func() {
		log.Printf("Checkpoint reached at %.0f,%.0f", x, y)
	}
	components.Flag.SetValue(entry, components.FlagData{Flag: f})
	setObject(ecs, entry, body, tags.ResolvFlag)

	return entry
}
