// Package tsp - stochastic 2-opt with decaying acceptance of worsening moves.
//
// StochasticTwoOpt runs R independent searches and keeps the shortest result.
// Each run:
//  1. Starts from a random route with city 0 fixed at position 0.
//  2. For t = 0..T−1 draws positions i, j uniformly from [1,n), orders them
//     (i<j) and skips pairs with j−i ≤ 2.
//  3. Evaluates Δ = −d(i,i+1) − d(j−1,j) + d(i,j−1) + d(i+1,j) and accepts the
//     move with probability exp(c·Δ·t). With c<0, improving moves (Δ<0) have
//     probability >1 and always pass; worsening moves pass ever more rarely as
//     t grows, so t itself plays the role of inverse temperature.
//  4. An accepted move reverses route[i+1..j−1].
//
// Position 0 is never touched by a move, so every run's route starts at 0.
//
// Complexity:
//   - O(n) per run for the initial route and final length, O(1) per
//     rejected candidate, O(j−i) per accepted move.
//   - Memory: O(n²) distance table shared by all runs, O(n) per run.
package tsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/citytour/geom"
)

// StochasticTwoOpt returns the best of opts.Runs stochastic 2-opt runs of
// opts.Iterations candidate moves each.
// Memory is O(n²); n is capped at MaxHeuristicCities.
//
// Errors: ErrTooFewCities, ErrTooManyCities, ErrNegativeBudget,
// ErrBadCoefficient, ErrTimeLimit, ErrInconsistentState.
func StochasticTwoOpt(cities []geom.City, opts Options) (Answer, error) {
	n, err := validateAll(cities, opts, Stochastic)
	if err != nil {
		return Answer{}, err
	}

	var (
		tab  = geom.NewTable(cities)
		base = newStreams(opts.Seed)
		dl   = newDeadline(opts.TimeLimit, 2047)
	)

	if n == 2 {
		return finalize(cities, identityRoute(2))
	}
	// Zero runs: report the first random route untouched.
	if opts.Runs == 0 {
		return finalize(cities, randomRoute(n, base.next(0)))
	}

	var (
		best  Answer
		found bool
		run   int
		route []int
		dist  float64
	)
	for run = 0; run < opts.Runs; run++ {
		if dl.expired() {
			return Answer{}, ErrTimeLimit
		}
		route, err = stochasticRun(tab, opts, base.next(run), &dl)
		if err != nil {
			return Answer{}, err
		}
		dist = tab.Length(route)
		// Losing routes are dropped here; only best keeps a reference.
		if !found || dist < best.Dist {
			best = Answer{Route: route, Dist: dist}
			found = true
		}
	}

	return finalize(cities, best.Route)
}

// stochasticRun performs one run and returns its final route.
func stochasticRun(tab *geom.Table, opts Options, rng *rand.Rand, dl *deadline) ([]int, error) {
	var (
		n     = tab.Len()
		route = randomRoute(n, rng)
		c     = opts.Coefficient
		span  = n - 1 // positions [1,n)
		t     int
		i, j  int
		delta float64
	)
	for t = 0; t < opts.Iterations; t++ {
		if dl.tick() {
			return nil, ErrTimeLimit
		}

		i = rng.Intn(span) + 1
		j = rng.Intn(span) + 1
		if i > j {
			i, j = j, i
		}
		if j-i <= 2 {
			continue
		}

		delta = reversalDelta(tab, route, i, j)
		if rng.Float64() < math.Exp(c*delta*float64(t)) {
			reverseSegmentInPlace(route, i+1, j-1)
		}
	}

	return route, nil
}

// finalize recomputes the length of route from scratch and checks the output
// contract. A violation is an internal bug, reported as ErrInconsistentState.
func finalize(cities []geom.City, route []int) (Answer, error) {
	if err := ValidateRoute(route, len(cities)); err != nil {
		return Answer{}, ErrInconsistentState
	}

	return Answer{Route: route, Dist: geom.TourLength(cities, route)}, nil
}
