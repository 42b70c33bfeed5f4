package stage

// Solid-shape codes past the plain shape range.
const (
	CodeNone  uint8 = 0
	CodeBump  uint8 = 16
	CodeBreak uint8 = 17
	CodeHurt  uint8 = 18
)

type shape uint8

const (
	shapeFloor shape = 1 << iota
	shapeCeiling
	shapeWallLeft
	shapeWallRight
)

// shapes is indexed by code-1. Bump and break tiles are closed boxes; hurt
// tiles are never checked.
var shapes = buildShapes()

func buildShapes() [CodeHurt]shape {
	var t [CodeHurt]shape
	sets := []struct {
		s   shape
		idx []int
	}{
		{shapeFloor, []int{0, 4, 6, 7, 10, 11, 13, 14, 15, 16}},
		{shapeCeiling, []int{2, 4, 8, 9, 11, 12, 13, 14, 15, 16}},
		{shapeWallLeft, []int{3, 5, 6, 9, 10, 12, 13, 14, 15, 16}},
		{shapeWallRight, []int{1, 5, 7, 8, 10, 11, 12, 14, 15, 16}},
	}
	for _, set := range sets {
		for _, i := range set.idx {
			t[i] |= set.s
		}
	}
	return t
}

func shapeOf(code uint8) shape {
	if code == CodeNone || int(code) > len(shapes) {
		return 0
	}
	return shapes[code-1]
}
