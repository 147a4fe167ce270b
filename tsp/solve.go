// Package tsp - unified dispatcher for the citytour solvers.
//
// Solve validates opts.Algo and routes to StochasticTwoOpt, SteepestTwoOpt or
// BranchAndBound. Each strategy performs its own input validation, so the
// individual entry points are equally safe to call directly.
package tsp

import "github.com/katalvlaran/citytour/geom"

// Solve runs the strategy selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm plus the sentinels of the chosen strategy.
func Solve(cities []geom.City, opts Options) (Answer, error) {
	switch opts.Algo {
	case Stochastic:
		return StochasticTwoOpt(cities, opts)
	case Steepest:
		return SteepestTwoOpt(cities, opts)
	case Exact:
		return BranchAndBound(cities, opts)
	default:
		return Answer{}, ErrUnsupportedAlgorithm
	}
}
