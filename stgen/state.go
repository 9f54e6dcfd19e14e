package stgen

import "fmt"

// Pair is the (n0, n1) count pair that identifies a state
type Pair struct {
	N0 uint32
	N1 uint32
}

// Less orders pairs by n0, then n1. Table indices follow this order.
func (p Pair) Less(o Pair) bool {
	if p.N0 != o.N0 {
		return p.N0 < o.N0
	}
	return p.N1 < o.N1
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.N0, p.N1)
}

// Transition selects one of the four successors of a state: the observed
// bit, and whether the probabilistic increment of its count succeeded.
type Transition int

const (
	S00 Transition = iota // input 0, increment fails
	S01                   // input 0, increment succeeds
	S10                   // input 1, increment fails
	S11                   // input 1, increment succeeds

	NumTransitions = 4
)

// Transitions lists every transition in table column order
var Transitions = [NumTransitions]Transition{S00, S01, S10, S11}

func (t Transition) String() string {
	switch t {
	case S00:
		return "s00"
	case S01:
		return "s01"
	case S10:
		return "s10"
	case S11:
		return "s11"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Next returns the counts reached from p by transition t. Observing a bit
// decays the opposite count; a successful increment also advances the
// observed count to the next representable value.
func (p Pair) Next(t Transition) Pair {
	switch t {
	case S00:
		return Pair{N0: p.N0, N1: Dec(p.N1)}
	case S01:
		return Pair{N0: Inc(p.N0), N1: Dec(p.N1)}
	case S10:
		return Pair{N0: Dec(p.N0), N1: p.N1}
	case S11:
		return Pair{N0: Dec(p.N0), N1: Inc(p.N1)}
	default:
		panic(fmt.Sprintf("stgen: invalid transition %d", int(t)))
	}
}

// Neighbors returns the successors of p in transition order
func (p Pair) Neighbors() [NumTransitions]Pair {
	var n [NumTransitions]Pair
	for _, t := range Transitions {
		n[t] = p.Next(t)
	}
	return n
}

// State is one row of the generated table: its counts and the indices of
// the states each transition leads to.
type State struct {
	Pair
	Next [NumTransitions]uint8
}

// Target returns the index of the state reached by transition t
func (s *State) Target(t Transition) int {
	return int(s.Next[t])
}
