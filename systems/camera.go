package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the screen shake. Following happens in the object
// pass, right after the player moves.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Update(GetOrCreateClock(e).Dt)
}
