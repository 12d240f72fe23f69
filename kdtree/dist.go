package kdtree

import (
	"math"
	"math/bits"
)

// sqSum is an exact sum of two squared uint64 gaps. Each square fits in 128
// bits, so the sum needs one more carry word.
type sqSum struct {
	carry uint64
	hi    uint64
	lo    uint64
}

// gap is |a - b| for any two ints, computed without overflow.
func gap(a int, b int) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

func sumOfSquares(dx uint64, dy uint64) sqSum {
	xh, xl := bits.Mul64(dx, dx)
	yh, yl := bits.Mul64(dy, dy)
	lo, c := bits.Add64(xl, yl, 0)
	hi, carry := bits.Add64(xh, yh, c)
	return sqSum{carry: carry, hi: hi, lo: lo}
}

func (s sqSum) less(o sqSum) bool {
	if s.carry != o.carry {
		return s.carry < o.carry
	}
	if s.hi != o.hi {
		return s.hi < o.hi
	}
	return s.lo < o.lo
}

// hypot is the Euclidean length of the gap vector (dx, dy).
func hypot(dx uint64, dy uint64) float64 {
	return math.Hypot(float64(dx), float64(dy))
}
