package gamemath

// UpdateSpeedAxis moves speed toward target by at most delta. It never
// overshoots the target.
func UpdateSpeedAxis(speed, target, delta float64) float64 {
	if speed < target {
		return min(speed+delta, target)
	}
	if speed > target {
		return max(speed-delta, target)
	}
	return speed
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	return UpdateSpeedAxis(speed, 0, friction)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return ClampFloat(speed, -max, max)
}

// ClampFloat constrains a value to the range [lo, hi].
func ClampFloat(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// NegMod returns m mod n in the range [0, n) for negative m as well.
func NegMod(m, n int) int {
	if n <= 0 {
		return 0
	}
	r := m % n
	if r < 0 {
		r += n
	}
	return r
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
