// Package tsp_test provides lightweight helpers shared across *_test.go files:
// deterministic city fixtures, a brute-force reference solver, and route
// assertions.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the canonical seed (0 ⇒ the package default stream).
	seedDet = int64(0)

	// epsTiny is the tolerance for comparing lengths summed in different orders.
	epsTiny = 1e-9

	// swapTol is the slack allowed when verifying a swap local optimum by full recomputation.
	swapTol = 1e-12
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// square10 is the 10×10 square; the optimal tour is its perimeter (40).
func square10() []geom.City {
	return []geom.City{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
}

// pentagon is a convex 5-gon; its hull order is the unique optimum.
func pentagon() []geom.City {
	return []geom.City{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 14, Y: 8}, {X: 6, Y: 14}, {X: -3, Y: 8}}
}

// scattered returns n deterministic pseudo-random cities on a 70×40 grid.
// A tiny LCG keeps the fixture independent of math/rand.
func scattered(n int, salt uint32) []geom.City {
	var (
		out = make([]geom.City, n)
		s   = salt*2654435761 + 1
		i   int
	)
	next := func(mod int) int {
		s = s*1664525 + 1013904223
		return int((s >> 8) % uint32(mod))
	}
	for i = 0; i < n; i++ {
		out[i] = geom.City{X: next(66), Y: next(40)}
	}

	return out
}

// -----------------------------------------------------------------------------
// Reference solver
// -----------------------------------------------------------------------------

// bruteForce returns the optimal tour length by enumerating every order of
// cities 1..n-1 behind a fixed city 0.
//
// Complexity: O(n·(n−1)!).
func bruteForce(cities []geom.City) float64 {
	var (
		n    = len(cities)
		best = math.Inf(1)
		perm = make([]int, n)
		used = make([]bool, n)
		rec  func(depth int)
	)
	rec = func(depth int) {
		if depth == n {
			if l := geom.TourLength(cities, perm); l < best {
				best = l
			}
			return
		}
		var i int
		for i = 1; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm[depth] = i
			rec(depth + 1)
			used[i] = false
		}
	}
	perm[0] = 0
	used[0] = true
	rec(1)

	return best
}

// worstTour returns the longest tour length, enumerated like bruteForce.
func worstTour(cities []geom.City) float64 {
	var (
		n     = len(cities)
		worst float64
		perm  = make([]int, n)
		used  = make([]bool, n)
		rec   func(depth int)
	)
	rec = func(depth int) {
		if depth == n {
			if l := geom.TourLength(cities, perm); l > worst {
				worst = l
			}
			return
		}
		var i int
		for i = 1; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm[depth] = i
			rec(depth + 1)
			used[i] = false
		}
	}
	perm[0] = 0
	used[0] = true
	rec(1)

	return worst
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustValidAnswer asserts the solver output contract: a permutation starting
// at 0 whose Dist equals its recomputed length.
func mustValidAnswer(t *testing.T, cities []geom.City, ans tsp.Answer) {
	t.Helper()
	require.NoError(t, tsp.ValidateRoute(ans.Route, len(cities)), "route %v", ans.Route)
	require.Equal(t, geom.TourLength(cities, ans.Route), ans.Dist, "Dist must be recomputed from Route")
}

// improvingSwap returns the first position pair (i<j, both ≥1) whose exchange
// shortens the tour by more than tol, recomputing the full length each time.
func improvingSwap(cities []geom.City, route []int, tol float64) (int, int, bool) {
	var (
		n    = len(route)
		base = geom.TourLength(cities, route)
		r    = append([]int(nil), route...)
		i, j int
	)
	for i = 1; i < n; i++ {
		for j = i + 1; j < n; j++ {
			r[i], r[j] = r[j], r[i]
			l := geom.TourLength(cities, r)
			r[i], r[j] = r[j], r[i]
			if l < base-tol {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}
