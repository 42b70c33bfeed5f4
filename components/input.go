package components

import (
	cfg "github.com/automoto/tilerun/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed is computed on demand.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	AxisX           float64 // analog stick, 0 inside the deadzone
	LastInputMethod InputMethod
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Axis is the horizontal direction, analog stick first.
func (i *InputData) Axis() float64 {
	if i.AxisX != 0 {
		return i.AxisX
	}
	var x float64
	if i.Current[cfg.ActionMoveLeft] {
		x--
	}
	if i.Current[cfg.ActionMoveRight] {
		x++
	}
	return x
}

// The methods below let the player behavior read its buttons.
func (i *InputData) JumpPressed() bool  { return i.JustPressed(cfg.ActionJump) }
func (i *InputData) JumpHeld() bool     { return i.Pressed(cfg.ActionJump) }
func (i *InputData) CrouchHeld() bool   { return i.Pressed(cfg.ActionMoveDown) }
func (i *InputData) ThrowPressed() bool { return i.JustPressed(cfg.ActionThrow) }

var Input = donburi.NewComponentType[InputData]()
