package main

import (
	"fmt"

	"github.com/katalvlaran/citytour/cityio"
	"github.com/urfave/cli"
)

func genCommand() cli.Command {
	return cli.Command{
		Name:      "gen",
		Usage:     "write a random city file that fits the map",
		ArgsUsage: "<out file>",
		Flags: append([]cli.Flag{
			cli.IntFlag{Name: "n", Value: 20, Usage: "number of cities"},
			cli.Int64Flag{Name: "seed", Usage: "random seed (0 selects the default)"},
		}, mapFlags()...),
		Action: runGen,
	}
}

func runGen(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("gen: expected one output file, got %d arguments", c.NArg())
	}
	path := c.Args().First()

	cities, err := cityio.Generate(c.Int("n"), c.Int("width"), c.Int("height"), c.Int64("seed"))
	if err != nil {
		return err
	}
	if err = cityio.WriteFile(path, cities); err != nil {
		return err
	}
	logger.Printf("wrote %d cities to %s", len(cities), path)

	return nil
}
