package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/behaviors"
)

type PlayerData struct {
	*behaviors.Player
}

var Player = donburi.NewComponentType[PlayerData]()
