package gamemath

import "math"

// ApplyFriction scales a velocity by a multiplicative friction factor.
func ApplyFriction(speed, friction float64) float64 {
	return speed * friction
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// CameraOffset centres a view of size view on target, keeping it inside a
// world of size world. Worlds smaller than the view pin the camera at 0.
func CameraOffset(target, view, world float64) float64 {
	if world <= view {
		return 0
	}
	return Clamp(math.Round(target-view/2), 0, world-view)
}
