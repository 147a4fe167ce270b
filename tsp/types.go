package tsp

import (
	"errors"
	"strings"
	"time"

	"github.com/katalvlaran/citytour/geom"
)

// Sentinel errors. Solvers return them unwrapped so callers can match with errors.Is.
var (
	// ErrTooFewCities is returned when fewer than two cities are supplied.
	ErrTooFewCities = geom.ErrTooFewCities

	// ErrTooManyCities is returned when n exceeds MaxExactCities (exact search)
	// or MaxHeuristicCities (local search).
	ErrTooManyCities = errors.New("tsp: too many cities")

	// ErrNegativeBudget is returned when Iterations, Runs or Restarts is negative.
	ErrNegativeBudget = errors.New("tsp: negative iteration or restart budget")

	// ErrBadCoefficient is returned when the acceptance coefficient is not a finite negative number.
	ErrBadCoefficient = errors.New("tsp: acceptance coefficient must be finite and negative")

	// ErrBadEps is returned when the improvement threshold is negative or NaN.
	ErrBadEps = errors.New("tsp: improvement threshold must be a non-negative number")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before the search completes.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrInconsistentState signals a broken internal invariant (a route that is
	// not a permutation of 0..n-1). It is a programming error, never an input error.
	ErrInconsistentState = errors.New("tsp: internal route invariant violated")

	// ErrInvalidRoute is returned by the exported route helpers for malformed routes.
	ErrInvalidRoute = errors.New("tsp: route is not a permutation of 0..n-1")
)

const (
	// MaxExactCities bounds the exact solver. Recursion depth equals n.
	MaxExactCities = 100

	// MaxHeuristicCities bounds the local-search solvers. Each call holds an
	// n×n float64 distance table (8·n² bytes, 200 MB at the limit).
	MaxHeuristicCities = 5000

	// DefaultIterations is the per-run move budget T of the stochastic search.
	DefaultIterations = 1_000_000

	// DefaultRuns is the number of independent stochastic runs R.
	DefaultRuns = 10

	// DefaultRestarts is the number of steepest-descent restarts.
	DefaultRestarts = 10

	// DefaultCoefficient is the acceptance coefficient c in exp(c·Δ·t).
	DefaultCoefficient = -1e-6

	// DefaultEps is the improvement threshold ε of steepest descent (Δ < −ε).
	DefaultEps = 1e-15
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// Stochastic is randomized 2-opt with decaying acceptance of worsening moves.
	Stochastic Algorithm = iota

	// Steepest is best-improvement pairwise-swap descent with random restarts.
	Steepest

	// Exact is depth-first branch-and-bound; optimal, exponential time.
	Exact
)

var algoNames = [...]string{
	Stochastic: "stochastic",
	Steepest:   "steepest",
	Exact:      "exact",
}

// String returns the lower-case name used by the CLI.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return "unknown"
	}

	return algoNames[a]
}

// ParseAlgorithm maps a CLI name (case-insensitive) to an Algorithm.
// "2opt", "sa" and "bb" are accepted as short aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stochastic", "2opt", "sa":
		return Stochastic, nil
	case "steepest", "swap":
		return Steepest, nil
	case "exact", "bb", "branch-and-bound":
		return Exact, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Options configures every solver. Each solver validates and reads only
// the fields it uses.
//
//   - Algo       : strategy used by Solve.
//   - Iterations : stochastic move budget T per run (0 ⇒ initial random route only).
//   - Runs       : independent stochastic runs R (0 ⇒ one unoptimised random route).
//   - Restarts   : steepest-descent restarts (0 ⇒ one unoptimised random route).
//   - Coefficient: c < 0 in the acceptance probability exp(c·Δ·t).
//   - Eps        : steepest descent accepts Δ < −Eps only.
//   - Seed       : RNG seed; 0 selects a fixed default, never wall-clock time.
//   - TimeLimit  : soft wall-clock budget; 0 means unlimited.
type Options struct {
	Algo        Algorithm
	Iterations  int
	Runs        int
	Restarts    int
	Coefficient float64
	Eps         float64
	Seed        int64
	TimeLimit   time.Duration
}

// DefaultOptions returns the tuned defaults (stochastic strategy).
func DefaultOptions() Options {
	return Options{
		Algo:        Stochastic,
		Iterations:  DefaultIterations,
		Runs:        DefaultRuns,
		Restarts:    DefaultRestarts,
		Coefficient: DefaultCoefficient,
		Eps:         DefaultEps,
	}
}

// Answer is a tour together with its length.
//
// Route is an open cyclic order of length n with Route[0]==0; the closing
// edge Route[n-1]→Route[0] is implicit. Dist is always geom.TourLength of
// Route over the solved city set. Every returned Answer owns its Route.
type Answer struct {
	Route []int
	Dist  float64
}

// NoTour is the "nothing solved yet" value; renderers draw only the city layout.
var NoTour Answer

// Empty reports whether a carries no route.
func (a Answer) Empty() bool { return a.Route == nil }
