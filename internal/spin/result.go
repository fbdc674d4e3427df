package spin

import "math"

// WinningIndex returns the option under the pointer for a wheel of n equal
// segments rotated by angle degrees. The half-segment offset puts the pointer
// on the centre of segment 0 at angle 0. n must be positive.
func WinningIndex(angle float64, n int) int {
	if n <= 1 {
		return 0
	}
	width := 360.0 / float64(n)
	pos := math.Mod(360-normalize(angle)+width/2, 360)
	if pos < 0 {
		pos += 360
	}
	idx := int(math.Floor(pos / width))
	// pos/width can round up to n for pos just below 360
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// SegmentWidth is 360/n, or 360 when n < 1.
func SegmentWidth(n int) float64 {
	if n < 1 {
		return 360
	}
	return 360.0 / float64(n)
}

// normalize wraps an angle into [0, 360).
func normalize(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}
