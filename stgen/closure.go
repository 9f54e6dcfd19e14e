package stgen

import "sort"

// Closure returns every pair reachable from the seeds, sorted by (n0, n1),
// together with the number of breadth-first rounds it took to reach the
// fixed point. The search space is bounded by the 256x256 count pairs, so it
// always terminates.
func Closure(seeds ...Pair) ([]Pair, int) {
	seen := make(map[Pair]struct{}, MaxStates)
	var frontier []Pair
	for _, p := range seeds {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			frontier = append(frontier, p)
		}
	}

	passes := 0
	for len(frontier) > 0 {
		passes++
		var next []Pair
		for _, p := range frontier {
			for _, n := range p.Neighbors() {
				if _, ok := seen[n]; ok {
					continue
				}
				seen[n] = struct{}{}
				next = append(next, n)
			}
		}
		frontier = next
	}

	pairs := make([]Pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sortPairs(pairs)
	return pairs, passes
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Less(pairs[j])
	})
}
