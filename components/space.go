package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broad phase for body-to-body contacts.
var Space = donburi.NewComponentType[resolv.Space]()
