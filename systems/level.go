package systems

import (
	"log"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStage advances the breaking tile effects.
func UpdateStage(ecs *ecs.ECS) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	components.Stage.Get(entry).Update(GetOrCreateClock(ecs).Dt)
}

// UpdateLives restarts the stage once the player's death routine is over.
// Running out of lives starts over from the beginning with a fresh count.
func UpdateLives(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if components.Object.Get(entry).Exist {
		return
	}

	p := components.Player.Get(entry)
	p.Lives--
	if p.Lives <= 0 {
		log.Printf("Game over with %d coins", p.Coins)
		p.Lives = cfg.Player.StartingLife
		p.Coins = 0
		p.ClearCheckpoint()
	}
	RestartStage(ecs)
}

// RestartStage puts the stage back in its authored state.
func RestartStage(ecs *ecs.ECS) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	log.Printf("Restarting stage %s", components.Stage.Get(entry).Name)
	spawner.queue = spawner.queue[:0]
	factory.ResetLevel(ecs)
}
