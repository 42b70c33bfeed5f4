package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/shared/physics"
)

// ObjectData pairs a body with its shape in the contact space. The shape
// mirrors the body's hitbox and is refreshed by SyncShape.
type ObjectData struct {
	*physics.Body
	Shape *resolv.Object
}

// SyncShape moves the contact shape onto the body's hitbox.
func (o *ObjectData) SyncShape() {
	if o.Shape == nil {
		return
	}
	x, y, w, h := o.Body.Rect()
	o.Shape.X, o.Shape.Y = x, y
	o.Shape.W, o.Shape.H = w, h
	o.Shape.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
