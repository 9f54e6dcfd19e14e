// Package stgen generates the counter state table used by an adaptive bit
// predictor. Each state approximates a pair of bit counts (n0, n1) in 8 bits;
// counts of 40 and above are kept at a coarse set of magnitudes and advanced
// by probabilistic increment.
package stgen

const (
	// MaxCount is the largest representable count
	MaxCount = 255

	// MaxStates is the number of states addressable by an 8-bit transition index
	MaxStates = 256

	// exactLimit is the first count that is no longer stored exactly
	exactLimit = 40

	// incScanLimit bounds the upward search in Inc. Anything at or above
	// MaxCount rounds to MaxCount, so the scan never needs to go this far.
	incScanLimit = 1000

	// decHalveLimit and decSqrtLimit select the decay regime of Dec
	decHalveLimit = 2
	decSqrtLimit  = 25
	decSqrtOffset = 6

	// probabilityOne is the fixed-point numerator of an increment probability
	probabilityOne = 0xFFFFFFFF
)

// largeCounts are the representable counts at or above exactLimit
var largeCounts = [...]uint32{40, 44, 48, 56, 64, 96, 128, 160, 192, 224, 255}

// InitialState is the counts of the state every predictor context starts in
var InitialState = Pair{N0: 0, N1: 0}
