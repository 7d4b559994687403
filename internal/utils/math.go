// internal/utils/math.go
package utils

// Lerp performs standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
