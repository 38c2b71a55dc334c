package raster

import "math"

// Resolution returns the side length of the square canvas for n bytes:
// round(sqrt(n)), halves rounded away from zero. Zero means nothing to draw.
func Resolution(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Round(math.Sqrt(float64(n))))
}
