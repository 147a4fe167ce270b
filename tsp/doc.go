// Package tsp solves small Euclidean Travelling Salesman instances given as
// integer city coordinates (see package geom).
//
// Three interchangeable strategies share one Options struct and return an
// Answer (route starting at city 0 plus its cyclic length):
//
//   - StochasticTwoOpt: randomized 2-opt segment reversals accepted with
//     probability exp(c·Δ·t); R independent runs of T moves, best kept.
//   - SteepestTwoOpt  : best-improvement pairwise-swap descent to a local
//     optimum from R random starts, best kept.
//   - BranchAndBound  : exact depth-first search with bound pruning and a
//     mirror-symmetry rule. Optimal; exponential; n ≤ MaxExactCities.
//
// Solve dispatches on Options.Algo.
//
// Determinism: all randomness derives from Options.Seed (0 ⇒ fixed default
// seed), so identical inputs and options give identical answers.
//
// Execution is sequential and blocking. Options.TimeLimit adds a soft
// wall-clock budget checked at run/restart boundaries and sparsely inside
// the loops; when it elapses the solver returns ErrTimeLimit.
//
// Heuristic strategies give no optimality guarantee.
package tsp
