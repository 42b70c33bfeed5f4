package gamemath

// HomingVelocity returns a velocity of the given speed pointing from one
// point to another. Points closer than the normalize epsilon give zero.
func HomingVelocity(from, to Vector, speed float64) Vector {
	d := to.Sub(from)
	if d.Length() < normalizeEpsilon {
		return Vector{}
	}
	return d.Normalize().Scale(speed)
}
