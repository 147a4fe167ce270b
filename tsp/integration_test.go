// Package tsp_test provides end-to-end checks across strategies:
//  1. Heuristics reach near-optimal lengths with default budgets (statistical).
//  2. No heuristic ever beats the exact solver.
//  3. Every strategy honours the route contract on the same inputs.
package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_DefaultBudgetsNearOptimal runs both heuristics with
// default budgets over 20 seeded trials per instance and checks the mean
// best length is within 5% of the brute-force optimum. The instances are
// chosen so that a random tour is clearly worse than that.
func TestIntegration_DefaultBudgetsNearOptimal(t *testing.T) {
	if testing.Short() {
		t.Skip("default budgets run 10⁷ moves per stochastic trial")
	}

	const trials = 20
	instances := map[string][]geom.City{"pentagon": pentagon()}
	var salt uint32
	for salt = 1; salt <= 6; salt++ {
		instances[fmt.Sprintf("scattered5_%d", salt)] = scattered(5, salt)
	}

	for name, cities := range instances {
		best := bruteForce(cities)
		require.Greater(t, worstTour(cities), 1.05*best, "%s: fixture too flat to discriminate", name)

		for _, algo := range []tsp.Algorithm{tsp.Stochastic, tsp.Steepest} {
			var (
				sum   float64
				trial int
			)
			for trial = 0; trial < trials; trial++ {
				opt := tsp.DefaultOptions()
				opt.Algo = algo
				opt.Seed = tsp.DeriveSeed(2024, uint64(trial))

				res, err := tsp.Solve(cities, opt)
				require.NoError(t, err, "%s %s trial %d", name, algo, trial)
				mustValidAnswer(t, cities, res)
				sum += res.Dist
			}
			mean := sum / trials
			assert.LessOrEqual(t, mean, 1.05*best, "%s %s: mean %.6f vs optimum %.6f", name, algo, mean, best)
		}
	}
}

// TestIntegration_ExactNeverBeaten cross-checks all three strategies on
// instances small enough for exhaustive search.
func TestIntegration_ExactNeverBeaten(t *testing.T) {
	var salt uint32
	for salt = 20; salt < 26; salt++ {
		cities := scattered(9, salt)

		exact, err := tsp.BranchAndBound(cities, tsp.Options{})
		require.NoError(t, err)
		mustValidAnswer(t, cities, exact)

		steep, err := tsp.SteepestTwoOpt(cities, steepOpts(5, int64(salt)))
		require.NoError(t, err)
		mustValidAnswer(t, cities, steep)

		stoch, err := tsp.StochasticTwoOpt(cities, stochOpts(30_000, 2, int64(salt)))
		require.NoError(t, err)
		mustValidAnswer(t, cities, stoch)

		assert.GreaterOrEqual(t, steep.Dist, exact.Dist-epsTiny, "salt=%d", salt)
		assert.GreaterOrEqual(t, stoch.Dist, exact.Dist-epsTiny, "salt=%d", salt)
	}
}
