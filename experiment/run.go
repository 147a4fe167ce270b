package experiment

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Run executes the sweep described by cfg on cities.
//
// Trial t of restart count R uses seed DeriveSeed(DeriveSeed(cfg.Seed, R), t),
// so adding or removing rows never changes the others.
func Run(cities []geom.City, cfg Config) (Report, error) {
	if cfg.Trials < 1 {
		return Report{}, ErrNoTrials
	}
	if len(cfg.Restarts) == 0 {
		return Report{}, ErrBadRestarts
	}
	for _, r := range cfg.Restarts {
		if r < 1 {
			return Report{}, fmt.Errorf("%w: %d", ErrBadRestarts, r)
		}
	}

	rep := Report{
		Cities: len(cities),
		Trials: cfg.Trials,
		Rows:   make([]Summary, 0, len(cfg.Restarts)),
		System: CollectSysInfo(),
	}

	opt := tsp.DefaultOptions()
	opt.Algo = tsp.Steepest

	for _, r := range cfg.Restarts {
		row := Summary{Restarts: r, Dists: make([]float64, cfg.Trials)}
		rowSeed := tsp.DeriveSeed(cfg.Seed, uint64(r))
		start := time.Now()

		var t int
		for t = 0; t < cfg.Trials; t++ {
			opt.Restarts = r
			opt.Seed = tsp.DeriveSeed(rowSeed, uint64(t))

			ans, err := tsp.SteepestTwoOpt(cities, opt)
			if err != nil {
				return Report{}, fmt.Errorf("experiment: R=%d trial %d: %w", r, t, err)
			}
			row.Dists[t] = ans.Dist
		}
		row.Elapsed = time.Since(start)
		summarize(&row)

		rep.Rows = append(rep.Rows, row)
		if cfg.Progress != nil {
			cfg.Progress(row)
		}
	}

	return rep, nil
}

func summarize(s *Summary) {
	s.Mean = stat.Mean(s.Dists, nil)
	if len(s.Dists) > 1 {
		s.StdDev = stat.StdDev(s.Dists, nil)
	}
	s.Min = floats.Min(s.Dists)
	s.Max = floats.Max(s.Dists)
}

// WriteText prints the system stamp followed by one line per restart count.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %d cities, %d trials, platform=%q cpu=%q ram=%q\n",
		r.Cities, r.Trials, r.System.Platform, r.System.CPU, r.System.RAM); err != nil {
		return err
	}
	for _, s := range r.Rows {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}

	return nil
}

// String formats a summary as a single report line.
func (s Summary) String() string {
	return fmt.Sprintf("%5d restarts: average distance = %f (sd %f, min %f, max %f) in %s",
		s.Restarts, s.Mean, s.StdDev, s.Min, s.Max, s.Elapsed.Round(time.Millisecond))
}
