package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer all renderers draw on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width       int      `yaml:"width"`  // logical screen width
	Height      int      `yaml:"height"` // logical screen height
	WindowScale int      `yaml:"window_scale"`
	Title       string   `yaml:"title"`
	Level       string   `yaml:"level"` // stage name without .tmx
	LevelsDir   string   `yaml:"levels_dir"`
	Background  [4]uint8 `yaml:"background"`
}

// LoopConfig contains the fixed-step scheduler settings
type LoopConfig struct {
	FrameRate  float64 `yaml:"frame_rate"`   // logical ticks per second
	MaxCatchUp int     `yaml:"max_catch_up"` // ticks run at most per frame
}

// PhysicsConfig contains the edge check windows and the stage scan settings
type PhysicsConfig struct {
	TileSize   int     `yaml:"tile_size"`
	ScanMargin int     `yaml:"scan_margin"` // cells scanned around a body
	PitOffset  float64 `yaml:"pit_offset"`  // kill zone distance below the stage

	FloorTop      float64 `yaml:"floor_top"`
	FloorBottom   float64 `yaml:"floor_bottom"`
	CeilingBottom float64 `yaml:"ceiling_bottom"`
	CeilingTop    float64 `yaml:"ceiling_top"`
	WallNear      float64 `yaml:"wall_near"`
	WallFar       float64 `yaml:"wall_far"`
	WallSafe      float64 `yaml:"wall_safe"`
}

// BreakEffectConfig contains the broken tile effect settings
type BreakEffectConfig struct {
	Duration float64 `yaml:"duration"` // steps until recycled
	JumpY    float64 `yaml:"jump_y"`
	Gravity  float64 `yaml:"gravity"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DeadZone     float64 `yaml:"dead_zone"`     // vertical slack in pixels
	LookDistance float64 `yaml:"look_distance"` // max horizontal look-ahead in pixels
	LookSpeed    float64 `yaml:"look_speed"`    // look-ahead ease per step
	VisiblePad   float64 `yaml:"visible_pad"`   // off-screen margin still counted as visible
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HurtIntensity  float64 `yaml:"hurt_intensity"` // pixels
	HurtDuration   float64 `yaml:"hurt_duration"`  // steps
	BreakIntensity float64 `yaml:"break_intensity"`
	BreakDuration  float64 `yaml:"break_duration"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`

	// Movement
	RunTarget float64 `yaml:"run_target"`
	FrictionX float64 `yaml:"friction_x"`
	FrictionY float64 `yaml:"friction_y"`
	Gravity   float64 `yaml:"gravity"` // terminal fall speed

	// Jumping
	JumpSpeed      float64 `yaml:"jump_speed"`
	JumpTime       float64 `yaml:"jump_time"`        // steps the jump speed is held
	JumpMarginTime float64 `yaml:"jump_margin_time"` // coyote time after leaving a floor
	StompJumpSpeed float64 `yaml:"stomp_jump_speed"`
	StompMargin    float64 `yaml:"stomp_margin"`

	// Health
	MaxHealth    int     `yaml:"max_health"`
	CrouchHeight float64 `yaml:"crouch_height"` // colbox height while crouching
	HurtTime     float64 `yaml:"hurt_time"`     // invulnerability steps after a hit
	KnockbackX   float64 `yaml:"knockback_x"`
	KnockbackY   float64 `yaml:"knockback_y"`
	DeathTime    float64 `yaml:"death_time"` // steps before respawn
	StartingLife int     `yaml:"starting_lives"`
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
	ColboxWidth  float64 `yaml:"colbox_width"`
	Friction     float64 `yaml:"friction"`
	Gravity      float64 `yaml:"gravity"`
	StompMargin  float64 `yaml:"stomp_margin"` // px above the enemy top that count as a stomp
	DeathTime    float64 `yaml:"death_time"`

	WalkSpeed float64 `yaml:"walk_speed"`

	HopSpeed    float64 `yaml:"hop_speed"`
	HopJump     float64 `yaml:"hop_jump"`
	HopInterval float64 `yaml:"hop_interval"` // steps between jumps
	HopRange    float64 `yaml:"hop_range"`    // player distance that wakes the hopper
}

// ItemConfig contains collectable configuration
type ItemConfig struct {
	HitboxSize float64 `yaml:"hitbox_size"`
	Gravity    float64 `yaml:"gravity"`
	Friction   float64 `yaml:"friction"`
	SpawnJump  float64 `yaml:"spawn_jump"` // vertical speed of items popped from tiles
	SpawnTime  float64 `yaml:"spawn_time"` // steps before a popped item can be collected
	DeathTime  float64 `yaml:"death_time"`
	CoinValue  int     `yaml:"coin_value"`
	HeartValue int     `yaml:"heart_value"`
}

// BoomerangConfig contains the player projectile settings
type BoomerangConfig struct {
	Size           float64 `yaml:"size"`
	ThrowSpeed     float64 `yaml:"throw_speed"`
	ThrowOffset    float64 `yaml:"throw_offset"` // px ahead of the player's middle
	Range          float64 `yaml:"range"`        // px travelled before turning back
	ReturnSpeed    float64 `yaml:"return_speed"`
	ReturnFriction float64 `yaml:"return_friction"`
	MaxActive      int     `yaml:"max_active"` // boomerangs in flight at once
}

// FlagConfig contains checkpoint flag settings
type FlagConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// UIConfig contains HUD and debug drawing configuration
type UIConfig struct {
	HUDFontSize   float64  `yaml:"hud_font_size"`
	DebugFontSize float64  `yaml:"debug_font_size"`
	HUDTextColor  [4]uint8 `yaml:"hud_text_color"`
	HUDMargin     float64  `yaml:"hud_margin"`

	// Tile palette by solid code group
	SolidColor  [4]uint8 `yaml:"solid_color"`
	BumpColor   [4]uint8 `yaml:"bump_color"`
	BreakColor  [4]uint8 `yaml:"break_color"`
	HurtColor   [4]uint8 `yaml:"hurt_color"`
	DecorColor  [4]uint8 `yaml:"decor_color"`
	PlayerColor [4]uint8 `yaml:"player_color"`
	EnemyColor  [4]uint8 `yaml:"enemy_color"`
	CoinColor   [4]uint8 `yaml:"coin_color"`
	HeartColor  [4]uint8 `yaml:"heart_color"`
	BoomColor   [4]uint8 `yaml:"boomerang_color"`
	FlagColor   [4]uint8 `yaml:"flag_color"`
	FlagOnColor [4]uint8 `yaml:"flag_active_color"`

	DebugHitboxColor [4]uint8 `yaml:"debug_hitbox_color"`
	DebugColboxColor [4]uint8 `yaml:"debug_colbox_color"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled  bool `yaml:"enabled"`  // draw boxes and tick stats
	Headless bool `yaml:"headless"` // run the simulation without a window
}

// Global configuration instances
var C *Config
var Loop LoopConfig
var Physics PhysicsConfig
var BreakEffect BreakEffectConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Item ItemConfig
var Boomerang BoomerangConfig
var Flag FlagConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// RGBA converts a config color tuple.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func init() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Width:       160,
		Height:      144,
		WindowScale: 4,
		Title:       "tilerun",
		Level:       "level1",
		LevelsDir:   "levels",
		Background:  [4]uint8{32, 24, 48, 255},
	}

	Loop = LoopConfig{
		FrameRate:  60,
		MaxCatchUp: 5,
	}

	Physics = PhysicsConfig{
		TileSize:   16,
		ScanMargin: 2,
		PitOffset:  16,

		FloorTop:      1,
		FloorBottom:   2,
		CeilingBottom: 1,
		CeilingTop:    2,
		WallNear:      1,
		WallFar:       2,
		WallSafe:      1,
	}

	BreakEffect = BreakEffectConfig{
		Duration: 30,
		JumpY:    -2,
		Gravity:  0.15,
	}

	Camera = CameraConfig{
		DeadZone:     16,
		LookDistance: 24,
		LookSpeed:    0.5,
		VisiblePad:   16,
	}

	ScreenShake = ScreenShakeConfig{
		HurtIntensity:  2,
		HurtDuration:   12,
		BreakIntensity: 1,
		BreakDuration:  6,
	}

	Player = PlayerConfig{
		HitboxWidth:  8,
		HitboxHeight: 16,

		RunTarget: 1.0,
		FrictionX: 0.1,
		FrictionY: 0.15,
		Gravity:   4.0,

		JumpSpeed:      -2.0,
		JumpTime:       16,
		JumpMarginTime: 15,
		StompJumpSpeed: -2.0,
		StompMargin:    16,

		MaxHealth:    3,
		CrouchHeight: 10,
		HurtTime:     60,
		KnockbackX:   1.5,
		KnockbackY:   -1.5,
		DeathTime:    60,
		StartingLife: 3,
	}

	Enemy = EnemyConfig{
		HitboxWidth:  12,
		HitboxHeight: 12,
		ColboxWidth:  4,
		Friction:     0.1,
		Gravity:      2.0,
		StompMargin:  8,
		DeathTime:    20,

		WalkSpeed: 0.5,

		HopSpeed:    0.75,
		HopJump:     -2.5,
		HopInterval: 60,
		HopRange:    64,
	}

	Item = ItemConfig{
		HitboxSize: 12,
		Gravity:    2.0,
		Friction:   0.1,
		SpawnJump:  -2.0,
		SpawnTime:  10,
		DeathTime:  12,
		CoinValue:  1,
		HeartValue: 1,
	}

	Boomerang = BoomerangConfig{
		Size:           8,
		ThrowSpeed:     3.0,
		ThrowOffset:    4,
		Range:          72,
		ReturnSpeed:    3.0,
		ReturnFriction: 0.25,
		MaxActive:      1,
	}

	Flag = FlagConfig{
		Width:  16,
		Height: 32,
	}

	UI = UIConfig{
		HUDFontSize:   8,
		DebugFontSize: 6,
		HUDTextColor:  [4]uint8{255, 255, 255, 255},
		HUDMargin:     2,

		SolidColor:  [4]uint8{96, 72, 56, 255},
		BumpColor:   [4]uint8{224, 176, 48, 255},
		BreakColor:  [4]uint8{160, 96, 64, 255},
		HurtColor:   [4]uint8{200, 40, 40, 255},
		DecorColor:  [4]uint8{48, 40, 72, 255},
		PlayerColor: [4]uint8{80, 160, 255, 255},
		EnemyColor:  [4]uint8{120, 200, 80, 255},
		CoinColor:   [4]uint8{255, 220, 0, 255},
		HeartColor:  [4]uint8{255, 80, 120, 255},
		BoomColor:   [4]uint8{240, 240, 200, 255},
		FlagColor:   [4]uint8{140, 140, 160, 255},
		FlagOnColor: [4]uint8{80, 255, 160, 255},

		DebugHitboxColor: [4]uint8{255, 0, 255, 160},
		DebugColboxColor: [4]uint8{0, 255, 255, 160},
	}

	Debug = DebugConfig{}
}
