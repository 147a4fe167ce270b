// Package tsp - steepest-descent pairwise-swap local search with restarts.
//
// SteepestTwoOpt repeats, for each restart:
//  1. Draw a random route with city 0 fixed at position 0.
//  2. Scan every position pair 1 ≤ i < j < n and evaluate the length change
//     of exchanging the two cities (swapDelta). Pairs whose cities share
//     coordinates are skipped: their exchange is a no-op that would only
//     register rounding noise.
//  3. Apply the single most negative Δ if it is below −Eps (best
//     improvement, not first improvement) and rescan; otherwise the route is
//     a local optimum under the swap neighbourhood.
//
// The shortest local optimum across restarts is returned.
//
// Complexity:
//   - One pass: O(n²) candidate checks, O(1) each.
//   - Passes per restart: bounded by the number of strict improvements.
//   - Memory: O(n²) shared distance table, O(n) per restart.
package tsp

import "github.com/katalvlaran/citytour/geom"

// SteepestTwoOpt returns the best local optimum over opts.Restarts random starts.
// Memory is O(n²); n is capped at MaxHeuristicCities.
//
// Errors: ErrTooFewCities, ErrTooManyCities, ErrNegativeBudget, ErrBadEps,
// ErrTimeLimit, ErrInconsistentState.
func SteepestTwoOpt(cities []geom.City, opts Options) (Answer, error) {
	n, err := validateAll(cities, opts, Steepest)
	if err != nil {
		return Answer{}, err
	}

	var (
		tab  = geom.NewTable(cities)
		base = newStreams(opts.Seed)
		dl   = newDeadline(opts.TimeLimit, 255)
	)

	if n == 2 {
		return finalize(cities, identityRoute(2))
	}
	if opts.Restarts == 0 {
		return finalize(cities, randomRoute(n, base.next(0)))
	}

	var (
		best    Answer
		found   bool
		restart int
		route   []int
		dist    float64
	)
	for restart = 0; restart < opts.Restarts; restart++ {
		if dl.expired() {
			return Answer{}, ErrTimeLimit
		}
		route, err = steepestDescent(cities, tab, randomRoute(n, base.next(restart)), opts.Eps, &dl)
		if err != nil {
			return Answer{}, err
		}
		dist = tab.Length(route)
		if !found || dist < best.Dist {
			best = Answer{Route: route, Dist: dist}
			found = true
		}
	}

	return finalize(cities, best.Route)
}

// steepestDescent improves route in place until no swap beats −eps and returns it.
func steepestDescent(cities []geom.City, tab *geom.Table, route []int, eps float64, dl *deadline) ([]int, error) {
	var (
		n        = len(route)
		i, j     int
		bi, bj   int
		delta    float64
		minDelta float64
	)
	for {
		if dl.tick() {
			return nil, ErrTimeLimit
		}

		bi, bj = -1, -1
		minDelta = 0
		for i = 1; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cities[route[i]] == cities[route[j]] {
					continue
				}
				delta = swapDelta(tab, route, i, j)
				if delta < minDelta-eps {
					minDelta = delta
					bi, bj = i, j
				}
			}
		}

		if bi == -1 {
			return route, nil
		}
		swapInPlace(route, bi, bj)
	}
}
