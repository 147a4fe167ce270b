package main

import (
	"fmt"

	"github.com/katalvlaran/citytour/experiment"
	"github.com/urfave/cli"
)

func experimentCommand() cli.Command {
	def := experiment.DefaultConfig()

	return cli.Command{
		Name:      "experiment",
		Usage:     "measure steepest-descent quality against the restart count",
		ArgsUsage: "<city file>",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "trials", Value: def.Trials, Usage: "solves per restart count"},
			cli.Int64Flag{Name: "seed", Usage: "parent seed"},
			cli.IntFlag{Name: "max-restarts", Value: def.Restarts[len(def.Restarts)-1], Usage: "largest restart count (powers of two up to it)"},
			cli.BoolFlag{Name: "verbose", Usage: "log each restart count as it finishes"},
		},
		Action: runExperiment,
	}
}

func runExperiment(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("experiment: expected one city file, got %d arguments", c.NArg())
	}
	cities, err := loadCities(c.Args().First())
	if err != nil {
		return err
	}

	cfg := experiment.Config{
		Restarts: experiment.PowersOfTwo(c.Int("max-restarts")),
		Trials:   c.Int("trials"),
		Seed:     c.Int64("seed"),
	}
	if c.Bool("verbose") {
		cfg.Progress = func(s experiment.Summary) { logger.Print(s) }
	}

	rep, err := experiment.Run(cities, cfg)
	if err != nil {
		return err
	}

	return rep.WriteText(c.App.Writer)
}
