package gamemath

import "math"

// normalizeEpsilon is the length below which Normalize leaves a vector alone.
const normalizeEpsilon = 0.001

// Vector represents a 2D point or direction.
type Vector struct {
	X, Y float64
}

// Vec returns a Vector with the given components.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Normalize returns the unit vector in the direction of v. Vectors shorter
// than 0.001 are returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l < normalizeEpsilon {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}
