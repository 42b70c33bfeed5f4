package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/behaviors"
)

// BoomerangData is a pooled player projectile. A held boomerang's body does
// not exist and its entry is reused by the next throw.
type BoomerangData struct {
	*behaviors.Boomerang
}

var Boomerang = donburi.NewComponentType[BoomerangData]()
