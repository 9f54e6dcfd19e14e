package stgen

import "math"

// Round maps an arbitrary count onto the nearest representable count at or
// below it. Counts under 40 are exact, larger ones snap to multiples of 4, 8
// and 32, and everything from 255 up saturates at 255.
func Round(n uint32) uint32 {
	switch {
	case n < exactLimit:
		return n
	case n < 48:
		return n / 4 * 4
	case n < 64:
		return n / 8 * 8
	case n < MaxCount:
		return n / 32 * 32
	default:
		return MaxCount
	}
}

// Inc returns the next representable count above n. Inc(255) is 255.
func Inc(n uint32) uint32 {
	for i := n; i < incScanLimit; i++ {
		if r := Round(i); r > n {
			return r
		}
	}
	return Round(MaxCount)
}

// Dec decays the count of the bit that was not observed so that newer data
// outweighs older data.
//
//	n < 2       unchanged
//	2 <= n < 25 n / 2
//	25 <= n     floor(sqrt(n)) + 6
func Dec(n uint32) uint32 {
	switch {
	case n < decHalveLimit:
	case n < decSqrtLimit:
		n /= 2
	default:
		n = isqrt(n) + decSqrtOffset
	}
	return Round(n)
}

// isqrt returns floor(sqrt(n)). The float estimate is corrected so that
// rounding in math.Sqrt can never move the result across an integer.
func isqrt(n uint32) uint32 {
	r := uint64(math.Sqrt(float64(n)))
	for r*r > uint64(n) {
		r--
	}
	for (r+1)*(r+1) <= uint64(n) {
		r++
	}
	return uint32(r)
}

// IsRepresentable reports whether n is a count a state can hold
func IsRepresentable(n uint32) bool {
	return n <= MaxCount && representable[n]
}

// RepresentableCounts returns every representable count in ascending order
func RepresentableCounts() []uint32 {
	counts := make([]uint32, 0, exactLimit+len(largeCounts))
	for n := uint32(0); n <= MaxCount; n++ {
		if representable[n] {
			counts = append(counts, n)
		}
	}
	return counts
}

// representable is a precalculated membership table over 0..255
var representable [MaxCount + 1]bool

func init() {
	for n := uint32(0); n < exactLimit; n++ {
		representable[n] = true
	}
	for _, n := range largeCounts {
		representable[n] = true
	}
}
