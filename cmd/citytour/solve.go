package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/citytour/cityio"
	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/render"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/urfave/cli"
)

// maxCities bounds the instance size accepted by the solve command.
const maxCities = 100

var errCityCount = errors.New("city count out of range")

func solveCommand() cli.Command {
	def := tsp.DefaultOptions()

	return cli.Command{
		Name:      "solve",
		Usage:     "find a short tour and plot it",
		ArgsUsage: "<city file>",
		Flags: append([]cli.Flag{
			cli.StringFlag{Name: "algo", Value: def.Algo.String(), Usage: "stochastic, steepest or exact"},
			cli.IntFlag{Name: "iters", Value: def.Iterations, Usage: "stochastic moves per run"},
			cli.IntFlag{Name: "runs", Value: def.Runs, Usage: "independent stochastic runs"},
			cli.IntFlag{Name: "restarts", Value: def.Restarts, Usage: "steepest-descent restarts"},
			cli.Float64Flag{Name: "coef", Value: def.Coefficient, Usage: "acceptance coefficient (< 0)"},
			cli.Int64Flag{Name: "seed", Value: def.Seed, Usage: "random seed (0 selects the default)"},
			cli.DurationFlag{Name: "timeout", Usage: "wall-clock budget, 0 for none"},
			cli.BoolFlag{Name: "no-plot", Usage: "skip the ASCII maps"},
			cli.BoolFlag{Name: "verbose", Usage: "log timings"},
		}, mapFlags()...),
		Action: runSolve,
	}
}

func runSolve(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("solve: expected one city file, got %d arguments", c.NArg())
	}
	algo, err := tsp.ParseAlgorithm(c.String("algo"))
	if err != nil {
		return fmt.Errorf("solve: %q: %w", c.String("algo"), err)
	}

	cities, err := loadCities(c.Args().First())
	if err != nil {
		return err
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.Iterations = c.Int("iters")
	opts.Runs = c.Int("runs")
	opts.Restarts = c.Int("restarts")
	opts.Coefficient = c.Float64("coef")
	opts.Seed = c.Int64("seed")
	opts.TimeLimit = c.Duration("timeout")

	ropts := render.Options{Width: c.Int("width"), Height: c.Int("height")}
	out := c.App.Writer
	plot := !c.Bool("no-plot")

	if plot {
		if err = render.Plot(out, cities, tsp.NoTour.Route, ropts); err != nil {
			return err
		}
	}

	start := time.Now()
	ans, err := tsp.Solve(cities, opts)
	if err != nil {
		return fmt.Errorf("solve: %s: %w", algo, err)
	}
	if c.Bool("verbose") {
		logger.Printf("%s: %d cities in %s", algo, len(cities), time.Since(start))
	}

	if plot && !ans.Empty() {
		if err = render.Plot(out, cities, ans.Route, ropts); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "total distance = %f\n", ans.Dist)
	fmt.Fprintln(out, tsp.DebugString(ans.Route))

	return nil
}

// loadCities reads path and enforces the 2..maxCities range.
func loadCities(path string) ([]geom.City, error) {
	cities, err := cityio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(cities) < 2 || len(cities) > maxCities {
		return nil, fmt.Errorf("%s: %w: %d (want 2..%d)", path, errCityCount, len(cities), maxCities)
	}

	return cities, nil
}
