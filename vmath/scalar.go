package vmath

import "math"

// Map re-maps v from [inLow, inHigh] onto [outLow, outHigh] without clamping
// A degenerate input range maps everything to outLow
func Map(v, inLow, inHigh, outLow, outHigh float64) float64 {
	span := inHigh - inLow
	if span == 0 {
		return outLow
	}
	return outLow + (v-inLow)*(outHigh-outLow)/span
}

// MapClamped re-maps v like Map and clamps the result into the output range
func MapClamped(v, inLow, inHigh, outLow, outHigh float64) float64 {
	m := Map(v, inLow, inHigh, outLow, outHigh)
	if outLow < outHigh {
		return Constrain(m, outLow, outHigh)
	}
	return Constrain(m, outHigh, outLow)
}

// Constrain clamps v into [lo, hi]; NaN collapses to lo
func Constrain(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Dist returns the Euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
