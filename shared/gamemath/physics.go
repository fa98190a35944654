package gamemath

// Clamp limits v to [lo, hi]. If hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		return lo
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise.
// Zero maps to 1 so a sprite facing never collapses to a zero scale.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// UniformRange maps a unit sample u in [0, 1) to [lo, hi).
func UniformRange(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}

// Centered maps a unit sample u in [0, 1) to [-span/2, span/2).
func Centered(u, span float64) float64 {
	return (u - 0.5) * span
}
