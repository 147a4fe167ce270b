// Package tsp - validation and time-budget helpers shared by all solvers.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/citytour/geom"
)

// validateAll verifies the Options used by algo and the city set size,
// returning n on success. The size check runs before any O(n²) table is
// built. Options.Algo itself is only checked by Solve.
//
// Complexity: O(1).
func validateAll(cities []geom.City, opts Options, algo Algorithm) (int, error) {
	if err := validateOptions(opts, algo); err != nil {
		return 0, err
	}
	if err := geom.Validate(cities); err != nil {
		return 0, err
	}
	n := len(cities)
	if (algo == Exact && n > MaxExactCities) || n > MaxHeuristicCities {
		return 0, ErrTooManyCities
	}

	return n, nil
}

// validateOptions checks the fields of opts that algo reads.
//
// Complexity: O(1).
func validateOptions(opts Options, algo Algorithm) error {
	if opts.TimeLimit < 0 {
		return ErrNegativeBudget
	}
	switch algo {
	case Stochastic:
		if opts.Iterations < 0 || opts.Runs < 0 {
			return ErrNegativeBudget
		}
		// c ≥ 0 would accept every worsening move forever; NaN poisons every test.
		if math.IsNaN(opts.Coefficient) || math.IsInf(opts.Coefficient, 0) || opts.Coefficient >= 0 {
			return ErrBadCoefficient
		}
	case Steepest:
		if opts.Restarts < 0 {
			return ErrNegativeBudget
		}
		if math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) || opts.Eps < 0 {
			return ErrBadEps
		}
	case Exact:
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// deadline is a soft wall-clock budget. tick() consults the clock only once
// every mask+1 calls to keep hot loops cheap; expired() always consults it.
type deadline struct {
	on    bool
	at    time.Time
	mask  int
	steps int
}

// newDeadline arms a deadline when limit > 0 (0 means unlimited).
// mask must be 2^k−1.
func newDeadline(limit time.Duration, mask int) deadline {
	if limit <= 0 {
		return deadline{mask: mask}
	}

	return deadline{on: true, at: time.Now().Add(limit), mask: mask}
}

// tick performs a rare deadline test.
func (d *deadline) tick() bool {
	d.steps++
	if !d.on || (d.steps&d.mask) != 0 {
		return false
	}

	return time.Now().After(d.at)
}

// expired performs an immediate deadline test.
func (d *deadline) expired() bool {
	return d.on && time.Now().After(d.at)
}
