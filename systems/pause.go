package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause, debug and restart toggles.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	input := getOrCreateInput(ecs)

	if input.JustPressed(cfg.ActionPause) {
		clock.Paused = !clock.Paused
	}
	if input.JustPressed(cfg.ActionDebug) {
		clock.Debug = !clock.Debug
	}
	if input.JustPressed(cfg.ActionRestart) && !clock.Paused {
		RestartStage(ecs)
	}
}

// WithGameplayChecks wraps a system so it is skipped while paused.
func WithGameplayChecks(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if GetOrCreateClock(ecs).Paused {
			return
		}
		system(ecs)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateClock(ecs).Paused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.RGBA([4]uint8{0, 0, 0, 160}), false)

	face := fonts.HUD.Get()
	msg := "PAUSED"
	x := (width - text.BoundString(face, msg).Dx()) / 2
	text.Draw(screen, msg, face, x, height/2, cfg.White)

	hint := pauseHint(getOrCreateInput(ecs).LastInputMethod)
	small := fonts.Debug.Get()
	x = (width - text.BoundString(small, hint).Dx()) / 2
	text.Draw(screen, hint, small, x, height/2+12, cfg.White)
}

func pauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "START resume  SELECT restart"
	}
	return "P resume  R restart"
}
