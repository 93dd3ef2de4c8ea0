package virtual

import (
	"math"

	"golang.org/x/exp/constraints"
)

// clamp limits v to [lo, hi]. When hi < lo the result is lo.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// nonNegative maps negative and non-finite values to zero.
func nonNegative(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
