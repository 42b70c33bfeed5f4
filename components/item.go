package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/behaviors"
)

// ItemData keeps the collectable script so a pooled entry can be respawned
// as another kind.
type ItemData struct {
	*behaviors.Collectable
}

var Item = donburi.NewComponentType[ItemData]()
