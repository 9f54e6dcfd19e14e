package stgen

// Table is the complete set of reachable states with resolved transitions.
// States are stored in (n0, n1) order and a state's position is its index.
type Table struct {
	States []State

	// Passes is the number of closure rounds needed to reach the fixed point
	Passes int

	index map[Pair]int
}

// Build enumerates every state reachable from the initial state and
// resolves all transitions
func Build() (*Table, error) {
	pairs, passes := Closure(InitialState)
	t, err := NewTable(pairs)
	if err != nil {
		return nil, err
	}
	t.Passes = passes
	return t, nil
}

// NewTable assigns indices to the given pairs in (n0, n1) order and resolves
// the transitions of every state. The pairs must be closed under the four
// transitions; a missing target is reported as ExitCodeClosureIncomplete.
func NewTable(pairs []Pair) (*Table, error) {
	sorted := make([]Pair, 0, len(pairs))
	index := make(map[Pair]int, len(pairs))
	for _, p := range pairs {
		if !IsRepresentable(p.N0) || !IsRepresentable(p.N1) {
			return nil, errExitCodef(ExitCodeInvariantViolation,
				"state %v has a count that is not representable", p)
		}
		if _, dup := index[p]; dup {
			continue
		}
		index[p] = 0
		sorted = append(sorted, p)
	}
	if len(sorted) > MaxStates {
		return nil, errExitCodef(ExitCodeTableOverflow,
			"%d states do not fit in an 8-bit state index", len(sorted))
	}
	sortPairs(sorted)

	t := &Table{
		States: make([]State, len(sorted)),
		index:  index,
	}
	for i, p := range sorted {
		t.States[i].Pair = p
		index[p] = i
	}

	for i := range t.States {
		s := &t.States[i]
		for _, tr := range Transitions {
			target := s.Pair.Next(tr)
			j, ok := index[target]
			if !ok {
				return nil, errExitCodef(ExitCodeClosureIncomplete,
					"state %d %v: %s target %v is not in the table", i, s.Pair, tr, target)
			}
			s.Next[tr] = uint8(j)
		}
	}
	return t, nil
}

// Len returns the number of states
func (t *Table) Len() int {
	return len(t.States)
}

// Index returns the index of the state holding counts p
func (t *Table) Index(p Pair) (int, bool) {
	i, ok := t.index[p]
	return i, ok
}

// Pairs returns the counts of every state in index order
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, len(t.States))
	for i := range t.States {
		pairs[i] = t.States[i].Pair
	}
	return pairs
}
