package stgen

// Verify checks a generated table against the invariants the predictor
// relies on and returns the first violation found
func Verify(t *Table) error {
	if t.Len() == 0 {
		return ErrExitCode(ExitCodeInvariantViolation, "table is empty")
	}
	if t.Len() > MaxStates {
		return errExitCodef(ExitCodeTableOverflow, "%d states exceed %d", t.Len(), MaxStates)
	}
	if t.States[0].Pair != InitialState {
		return errExitCodef(ExitCodeInvariantViolation,
			"state 0 is %v, want initial state %v", t.States[0].Pair, InitialState)
	}

	for i := range t.States {
		s := &t.States[i]
		if !IsRepresentable(s.N0) || !IsRepresentable(s.N1) {
			return errExitCodef(ExitCodeInvariantViolation,
				"state %d %v has a count that is not representable", i, s.Pair)
		}
		if i > 0 && !t.States[i-1].Pair.Less(s.Pair) {
			return errExitCodef(ExitCodeInvariantViolation,
				"state %d %v is not ordered after state %d %v", i, s.Pair, i-1, t.States[i-1].Pair)
		}
		for _, tr := range Transitions {
			j := s.Target(tr)
			if j >= t.Len() {
				return errExitCodef(ExitCodeInvariantViolation,
					"state %d %v: %s index %d is out of range", i, s.Pair, tr, j)
			}
			if want := s.Pair.Next(tr); t.States[j].Pair != want {
				return errExitCodef(ExitCodeInvariantViolation,
					"state %d %v: %s leads to %v, want %v", i, s.Pair, tr, t.States[j].Pair, want)
			}
		}
		for _, n := range [2]uint32{s.N0, s.N1} {
			p, err := IncrementProbability(n)
			if err != nil {
				return err
			}
			if (p == 0) != (n == MaxCount) {
				return errExitCodef(ExitCodeInvariantViolation,
					"state %d %v: increment probability %d for count %d", i, s.Pair, p, n)
			}
		}
	}

	pairs, _ := Closure(t.Pairs()...)
	if len(pairs) != t.Len() {
		return errExitCodef(ExitCodeClosureIncomplete,
			"closure of the table has %d states, table has %d", len(pairs), t.Len())
	}
	return nil
}
