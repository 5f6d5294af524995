package common

import "cmp"

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FloorDiv divides rounding toward negative infinity, so pixel coordinates
// left of or above the origin land in tile -1 rather than tile 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
