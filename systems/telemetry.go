package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/telemetry"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sample reads the state worth tracing out of the world.
func Sample(ecs *ecs.ECS) telemetry.Sample {
	s := telemetry.Sample{Tick: GetOrCreateClock(ecs).Ticks}

	if entry, ok := components.Stage.First(ecs.World); ok {
		sd := components.Stage.Get(entry)
		s.Stage = sd.Name
		s.Effects = sd.ActiveEffects()
	}
	if entry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		p := components.Player.Get(entry)
		s.PlayerX, s.PlayerY = obj.Pos.X, obj.Pos.Y
		s.SpeedX, s.SpeedY = obj.Speed.X, obj.Speed.Y
		s.OnFloor = p.CanJump
		s.Health, s.Lives, s.Coins = p.Health, p.Lives, p.Coins
	}
	if entry, ok := components.Camera.First(ecs.World); ok {
		cam := components.Camera.Get(entry)
		s.CameraX, s.CameraY = cam.Pos.X, cam.Pos.Y
	}

	live := func(n *int) func(*donburi.Entry) {
		return func(e *donburi.Entry) {
			if components.Object.Get(e).Exist {
				*n++
			}
		}
	}
	tags.Enemy.Each(ecs.World, live(&s.Enemies))
	tags.Item.Each(ecs.World, live(&s.Items))
	return s
}
