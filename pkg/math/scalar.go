package math

import "github.com/chewxy/math32"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snap rounds v to the nearest multiple of step, halves rounding up.
// A non-positive step returns v unchanged.
func Snap(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return math32.Floor(v/step+0.5) * step
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}
