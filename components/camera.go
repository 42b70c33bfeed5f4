package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/shared/camera"
)

var Camera = donburi.NewComponentType[camera.Camera]()
