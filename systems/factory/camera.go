package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/camera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera centers a screen-sized view on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	cam := camera.New(x, y, float64(cfg.C.Width), float64(cfg.C.Height), cfg.CameraSettings())
	components.Camera.Set(entry, cam)
	return entry
}
