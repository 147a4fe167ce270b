// Command citytour loads a city file, finds a short closed tour with one of
// three strategies and draws it as an ASCII map.
//
// Usage:
//
//	citytour solve [--algo stochastic|steepest|exact] [flags] <city file>
//	citytour experiment [--trials N --seed S --max-restarts R] <city file>
//	citytour gen --n N [--seed S --width W --height H] <out file>
package main

import (
	"log"
	"os"

	"github.com/urfave/cli"
)

var logger = log.New(os.Stderr, "citytour: ", 0)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "citytour"
	app.Usage = "plan short closed tours over cities on a grid"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		solveCommand(),
		experimentCommand(),
		genCommand(),
	}

	return app
}

// mapFlags are shared by every command that draws or generates a map.
func mapFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{Name: "width", Value: 70, Usage: "map width in columns"},
		cli.IntFlag{Name: "height", Value: 40, Usage: "map height in rows"},
	}
}
