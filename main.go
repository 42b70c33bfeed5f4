package main

import (
	"context"
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/scenes"
	"github.com/automoto/tilerun/shared/loop"
	"github.com/automoto/tilerun/shared/telemetry"
	"github.com/automoto/tilerun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds  image.Rectangle
	scene   *scenes.PlatformerScene
	stepper *loop.Stepper
}

func NewGame(levels fs.FS, dir string) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		scene:   scenes.NewPlatformerScene(levels, dir, config.C.Level),
		stepper: loop.NewStepper(config.Loop.FrameRate, config.Loop.MaxCatchUp),
	}
}

// Update runs as many logical ticks as the elapsed time calls for.
func (g *Game) Update() error {
	n := g.stepper.Frame(time.Now())
	for range n {
		if err := g.scene.Update(g.stepper.Step()); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	level := flag.String("level", "", "stage to start on")
	levelsDir := flag.String("levels", "", "directory of .tmx stages (defaults to the bundled ones)")
	debug := flag.Bool("debug", false, "draw collision boxes and tick stats")
	headless := flag.Bool("headless", false, "run the simulation without a window until interrupted")
	trace := flag.String("trace", "", "CSV file for headless telemetry samples")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *level != "" {
		config.C.Level = *level
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *headless {
		config.Debug.Headless = true
	}

	levels, dir := assets.Levels(), assets.LevelsDir
	if *levelsDir != "" {
		levels, dir = os.DirFS(*levelsDir), "."
	} else if config.C.LevelsDir != assets.LevelsDir {
		levels, dir = os.DirFS(config.C.LevelsDir), "."
	}

	if config.Debug.Headless {
		runHeadless(levels, dir, *trace)
		return
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Logical ticks come from the stepper, not from the TPS.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(NewGame(levels, dir)); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(levels fs.FS, dir, trace string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var rec *telemetry.Recorder
	if trace != "" {
		f, err := os.Create(trace)
		if err != nil {
			log.Fatalf("Failed to create trace file: %v", err)
		}
		defer f.Close()
		rec = telemetry.NewRecorder(f, uint64(config.Loop.FrameRate))
	}

	scene := scenes.NewHeadlessScene(levels, dir, config.C.Level)
	stepper := loop.NewStepper(config.Loop.FrameRate, config.Loop.MaxCatchUp)
	err := stepper.Run(ctx, func(dt float64) error {
		if err := scene.Update(dt); err != nil {
			return err
		}
		s := systems.Sample(scene.ECS())
		s.DroppedMS = stepper.Dropped().Milliseconds()
		return rec.Record(s)
	})
	if err != nil {
		log.Fatalf("Headless run failed: %v", err)
	}
	log.Printf("Ran %d ticks, wrote %d samples", stepper.Ticks(), rec.Rows())
}
