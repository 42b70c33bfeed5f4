package config

import (
	"fmt"
	"os"

	"github.com/automoto/tilerun/shared/camera"
	"github.com/automoto/tilerun/shared/physics"
	"github.com/automoto/tilerun/shared/stage"
	"gopkg.in/yaml.v3"
)

// file mirrors the globals so that a YAML document only overwrites the
// fields it mentions.
type file struct {
	Window      *Config            `yaml:"window"`
	Loop        *LoopConfig        `yaml:"loop"`
	Physics     *PhysicsConfig     `yaml:"physics"`
	BreakEffect *BreakEffectConfig `yaml:"break_effect"`
	Camera      *CameraConfig      `yaml:"camera"`
	ScreenShake *ScreenShakeConfig `yaml:"screen_shake"`
	Player      *PlayerConfig      `yaml:"player"`
	Enemy       *EnemyConfig       `yaml:"enemy"`
	Item        *ItemConfig        `yaml:"item"`
	Boomerang   *BoomerangConfig   `yaml:"boomerang"`
	Flag        *FlagConfig        `yaml:"flag"`
	UI          *UIConfig          `yaml:"ui"`
	Debug       *DebugConfig       `yaml:"debug"`
}

func globals() *file {
	return &file{
		Window:      C,
		Loop:        &Loop,
		Physics:     &Physics,
		BreakEffect: &BreakEffect,
		Camera:      &Camera,
		ScreenShake: &ScreenShake,
		Player:      &Player,
		Enemy:       &Enemy,
		Item:        &Item,
		Boomerang:   &Boomerang,
		Flag:        &Flag,
		UI:          &UI,
		Debug:       &Debug,
	}
}

// Load overlays a YAML file on the defaults. An empty path keeps the
// defaults.
func Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse overlays a YAML document on the current values.
func Parse(data []byte) error {
	if err := yaml.Unmarshal(data, globals()); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if Loop.MaxCatchUp <= 0 || Loop.FrameRate <= 0 {
		return fmt.Errorf("loop: frame_rate and max_catch_up must be positive")
	}
	if Physics.TileSize <= 0 {
		return fmt.Errorf("physics: tile_size must be positive")
	}
	return nil
}

// Reset restores the built-in defaults.
func Reset() {
	setDefaults()
}

// Dump writes the current values as YAML.
func Dump() ([]byte, error) {
	return yaml.Marshal(globals())
}

// Margins returns the edge check windows for bodies.
func Margins() physics.Margins {
	p := Physics
	return physics.Margins{
		FloorTop:      p.FloorTop,
		FloorBottom:   p.FloorBottom,
		CeilingBottom: p.CeilingBottom,
		CeilingTop:    p.CeilingTop,
		WallNear:      p.WallNear,
		WallFar:       p.WallFar,
		WallSafe:      p.WallSafe,
	}
}

// StageConfig returns the collision driver settings.
func StageConfig() stage.Config {
	return stage.Config{
		TileSize:   Physics.TileSize,
		ScanMargin: Physics.ScanMargin,
		PitOffset:  Physics.PitOffset,
		Effect: stage.EffectConfig{
			Duration: BreakEffect.Duration,
			JumpY:    BreakEffect.JumpY,
			Gravity:  BreakEffect.Gravity,
		},
	}
}

// CameraSettings returns the camera framing settings.
func CameraSettings() camera.Settings {
	return camera.Settings{
		DeadZone:     Camera.DeadZone,
		LookDistance: Camera.LookDistance,
		LookSpeed:    Camera.LookSpeed,
		VisiblePad:   Camera.VisiblePad,
	}
}
