package systems

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock counts logical ticks. The step itself is set by the scene
// before the world updates.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	if clock.Paused {
		return
	}
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
		components.Clock.SetValue(entry, components.ClockData{Dt: 1})
	}
	return components.Clock.Get(entry)
}
