package experiment

import (
	"errors"
	"time"
)

var (
	// ErrNoTrials is returned when Config.Trials < 1.
	ErrNoTrials = errors.New("experiment: at least one trial is required")

	// ErrBadRestarts is returned for an empty restart list or a count < 1.
	ErrBadRestarts = errors.New("experiment: restart counts must be positive")
)

// Config describes a sweep.
//
//   - Restarts: restart counts to evaluate, in report order.
//   - Trials  : solves per restart count.
//   - Seed    : parent seed; trial seeds are derived from it.
//   - Progress: optional callback invoked after each restart count.
type Config struct {
	Restarts []int
	Trials   int
	Seed     int64
	Progress func(Summary)
}

// DefaultConfig sweeps R = 1, 2, 4, …, 8192 with 8 trials each.
func DefaultConfig() Config {
	return Config{Restarts: PowersOfTwo(8192), Trials: 8}
}

// PowersOfTwo returns 1, 2, 4, … up to and including the largest power ≤ limit.
func PowersOfTwo(limit int) []int {
	var out []int
	for r := 1; r <= limit && r > 0; r *= 2 {
		out = append(out, r)
	}

	return out
}

// Summary holds the results for one restart count.
type Summary struct {
	Restarts int
	Dists    []float64
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	Elapsed  time.Duration
}

// SysInfo describes the host a report was produced on.
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// Report is the outcome of Run.
type Report struct {
	Cities int
	Trials int
	Rows   []Summary
	System SysInfo
}
