package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one stage.
type PlatformerScene struct {
	ecs      *ecs.ECS
	levels   fs.FS
	dir      string
	level    string
	headless bool
	once     sync.Once
	err      error
}

// NewPlatformerScene loads the named stage from dir inside levels on the
// first update.
func NewPlatformerScene(levels fs.FS, dir, level string) *PlatformerScene {
	return &PlatformerScene{levels: levels, dir: dir, level: level}
}

// NewHeadlessScene is a scene without input polling, for running the
// simulation outside a window.
func NewHeadlessScene(levels fs.FS, dir, level string) *PlatformerScene {
	ps := NewPlatformerScene(levels, dir, level)
	ps.headless = true
	return ps
}

// Update runs one logical tick of dt steps.
func (ps *PlatformerScene) Update(dt float64) error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	systems.GetOrCreateClock(ps.ecs).Dt = dt
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// ECS exposes the world, mostly for tests and the headless runner.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

// Err reports a failure to build the stage.
func (ps *PlatformerScene) Err() error {
	return ps.err
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	if !ps.headless {
		ecs.AddSystem(systems.UpdateInput)
		ecs.AddSystem(systems.UpdatePause)
	}
	ecs.AddSystem(systems.UpdateClock)

	// Game systems wrapped with the pause check
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLives))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawStage)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawObjects)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	if _, err := factory.CreateLevel(ps.ecs, ps.levels, ps.dir, ps.level); err != nil {
		ps.err = err
		return
	}
	systems.GetOrCreateClock(ps.ecs).Debug = cfg.Debug.Enabled
}
