package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/behaviors"
)

type FlagData struct {
	*behaviors.Flag
}

var Flag = donburi.NewComponentType[FlagData]()
