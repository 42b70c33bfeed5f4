package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Dt     float64 // logical step of the current tick
	Ticks  uint64
	Paused bool
	Debug  bool
}

var Clock = donburi.NewComponentType[ClockData]()
