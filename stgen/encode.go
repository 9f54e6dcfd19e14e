package stgen

// Row is the encoded form of one state as the predictor consumes it
type Row struct {
	Get0, Get1 uint32
	Next       [NumTransitions]uint8
	P01, P11   uint32

	Index int
	Pair  Pair
}

// EncodeRow encodes the state at index i of the table
func EncodeRow(i int, s *State) (Row, error) {
	p01, err := IncrementProbability(s.N0)
	if err != nil {
		return Row{}, err
	}
	p11, err := IncrementProbability(s.N1)
	if err != nil {
		return Row{}, err
	}
	get0, get1 := Weights(s.Pair)
	return Row{
		Get0:  get0,
		Get1:  get1,
		Next:  s.Next,
		P01:   p01,
		P11:   p11,
		Index: i,
		Pair:  s.Pair,
	}, nil
}

// Weights returns the adjusted counts get0 and get1 that replace n0 and n1
// in the table. They weigh the smaller count more heavily when the counts
// are skewed.
func Weights(p Pair) (get0, get1 uint32) {
	get0 = p.N0 * 2
	get1 = p.N1 * 2
	switch {
	case p.N0 == 0:
		get1 *= 2
	case p.N1 == 0:
		get0 *= 2
	case p.N0 > p.N1:
		get0 /= get1
		get1 = 1
	case p.N1 > p.N0:
		get1 /= get0
		get0 = 1
	default:
		get0, get1 = 1, 1
	}
	return get0, get1
}

// IncrementProbability returns the probability that an observed count n
// advances to Inc(n), scaled by 2^32-1. A count that cannot grow yields 0.
func IncrementProbability(n uint32) (uint32, error) {
	if n > MaxCount {
		return 0, errExitCodef(ExitCodeArithmeticOverflow,
			"count %d is above the maximum of %d", n, MaxCount)
	}
	delta := Inc(n) - n
	if delta == 0 {
		return 0, nil
	}
	return probabilityOne / delta, nil
}
