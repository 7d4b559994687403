// pkg/tile/tile.go

// Package tile holds the CPU-side mirror of the background shader's UV
// tiling math, so the per-pixel mapping can be verified without a GPU.
package tile

import "math"

// Fract returns the fractional part of x, in [0, 1).
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// UV maps a normalized texture coordinate to its tiled equivalent on an
// fx by fy grid: fract(u*fx), fract(v*fy).
func UV(u, v, fx, fy float64) (float64, float64) {
	return Fract(u * fx), Fract(v * fy)
}
