// Package tsp - exact depth-first Branch-and-Bound.
//
// BranchAndBound enumerates routes that start at city 0 and extends the
// prefix one city at a time:
//
//   - Pruning: a candidate i is skipped when cum + d(last, i) ≥ bound, where
//     bound is the shortest complete tour found so far. Distances are
//     non-negative, so a prefix already at or above the bound can never
//     complete into a shorter tour; the prune never removes the optimum.
//   - Symmetry: city 2 may only be placed after city 1. Every tour and its
//     mirror image have 1 and 2 in opposite order, so exactly one of each
//     pair is explored (n ≥ 3); for n ≤ 2 the rule never fires.
//   - Rotation: fixing city 0 at position 0 removes rotated duplicates.
//
// All search state (prefix, visited set, bound) lives in a bbEngine created
// per call, so independent calls never share a bound.
//
// Complexity:
//   - Worst case O((n−1)!/2) leaves; pruning makes small instances fast.
//   - Recursion depth n (≤ MaxExactCities); O(n) state + O(n²) distance table.
package tsp

import (
	"math"

	"github.com/katalvlaran/citytour/geom"
)

// bbEngine holds the search state of one BranchAndBound invocation.
type bbEngine struct {
	n   int
	tab *geom.Table

	// path[0:depth] is the assigned prefix; the rest holds unassigned.
	// visited[i] ⇔ i occurs in path[0:depth].
	path    []int
	visited []bool

	// bound is the shortest complete tour length seen so far.
	bound float64

	dl       deadline
	timedOut bool
}

// BranchAndBound returns an optimal tour starting at city 0.
// opts.TimeLimit is honoured; every other field is ignored.
//
// Errors: ErrTooFewCities, ErrTooManyCities, ErrNegativeBudget, ErrTimeLimit,
// ErrInconsistentState.
func BranchAndBound(cities []geom.City, opts Options) (Answer, error) {
	n, err := validateAll(cities, opts, Exact)
	if err != nil {
		return Answer{}, err
	}
	// A single cyclic order exists; no prefix semantics to set up.
	if n == 2 {
		return finalize(cities, identityRoute(2))
	}

	e := bbEngine{
		n:       n,
		tab:     geom.NewTable(cities),
		path:    make([]int, n),
		visited: make([]bool, n),
		bound:   math.Inf(1),
		dl:      newDeadline(opts.TimeLimit, 4095),
	}
	var i int
	for i = range e.path {
		e.path[i] = unassigned
	}
	e.path[0] = 0
	e.visited[0] = true

	best, found := e.search(1, 0)
	if e.timedOut {
		return Answer{}, ErrTimeLimit
	}
	if !found {
		// The first descent always reaches a leaf under an infinite bound.
		return Answer{}, ErrInconsistentState
	}

	return finalize(cities, best.Route)
}

// search explores every completion of path[0:depth] whose cumulative length
// is cum and returns the shortest one found in this subtree. found is false
// when every branch was pruned.
func (e *bbEngine) search(depth int, cum float64) (best Answer, found bool) {
	if e.dl.tick() {
		e.timedOut = true
		return Answer{}, false
	}

	last := e.path[depth-1]
	if depth == e.n {
		total := cum + e.tab.At(last, 0)
		if total < e.bound {
			e.bound = total
		}

		return Answer{Route: CopyRoute(e.path), Dist: total}, true
	}

	var (
		i    int
		step float64
	)
	for i = 1; i < e.n; i++ {
		if e.visited[i] {
			continue
		}
		if i == 2 && !e.visited[1] {
			continue // mirror image of a tour with 1 before 2
		}
		step = e.tab.At(last, i)
		if cum+step >= e.bound {
			continue
		}

		e.visited[i] = true
		e.path[depth] = i
		cand, ok := e.search(depth+1, cum+step)
		e.path[depth] = unassigned
		e.visited[i] = false

		if e.timedOut {
			return Answer{}, false
		}
		// The losing candidate's route is dropped here.
		if ok && (!found || cand.Dist < best.Dist) {
			best, found = cand, true
		}
	}

	return best, found
}
