package gamemath

// LineY returns the height of a tile's surface line at relX pixels from the
// tile's left edge: bottom - m*relX - b. Screen y grows downward, so a
// positive m rises to the right.
func LineY(bottom, m, b, relX float64) float64 {
	return bottom - m*relX - b
}

// LineEnds returns the line height at the left and right edges of a tile of
// the given size.
func LineEnds(bottom, m, b, size float64) (left, right float64) {
	return LineY(bottom, m, b, 0), LineY(bottom, m, b, size)
}

// SlopeMaxSpeed scales a base speed by steepness: climbing divides by
// 1+|m|, descending multiplies by it.
func SlopeMaxSpeed(base, m float64, climbing bool) float64 {
	k := 1 + abs(m)
	if climbing {
		return base / k
	}
	return base * k
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
