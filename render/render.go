package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
)

var (
	// ErrOutOfMap is returned when a city or its label does not fit the grid.
	ErrOutOfMap = errors.New("render: city outside the map")

	// ErrBadRoute is returned when the route is not a permutation of the cities.
	ErrBadRoute = errors.New("render: route is not a permutation of the cities")
)

// Separator is printed before every plot.
const Separator = "----------"

// Options sets the grid size.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns the 70×40 map.
func DefaultOptions() Options {
	return Options{Width: 70, Height: 40}
}

// canvas is a column-major character grid: dot[x][y].
type canvas struct {
	w, h int
	dot  [][]byte
}

func newCanvas(w, h int) *canvas {
	var (
		buf = make([]byte, w*h)
		dot = make([][]byte, w)
		x   int
	)
	for x = range buf {
		buf[x] = ' '
	}
	for x = 0; x < w; x++ {
		dot[x] = buf[x*h : (x+1)*h]
	}

	return &canvas{w: w, h: h, dot: dot}
}

// line traces a→b excluding a, marking blank cells only. Intermediate points
// are a + k·(b−a)/steps with integer division, steps = max(|dx|, |dy|).
func (c *canvas) line(a, b geom.City) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))

	var (
		k    int
		x, y int
	)
	for k = 1; k <= steps; k++ {
		x = a.X + k*dx/steps
		y = a.Y + k*dy/steps
		if c.dot[x][y] == ' ' {
			c.dot[x][y] = '*'
		}
	}
}

// Plot writes the map of cities to w. A nil route draws only the city layout;
// otherwise route must be a permutation of the city indices and every edge
// route[i]→route[(i+1) mod n] is traced.
//
// Errors: ErrOutOfMap, ErrBadRoute, or the writer's error.
func Plot(w io.Writer, cities []geom.City, route []int, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w: empty %dx%d map", ErrOutOfMap, opts.Width, opts.Height)
	}
	if route != nil && tsp.ValidatePermutation(route, len(cities)) != nil {
		return ErrBadRoute
	}

	c := newCanvas(opts.Width, opts.Height)

	var (
		i, j  int
		label string
		city  geom.City
	)
	for i, city = range cities {
		label = geom.Label(i)
		if city.X < 0 || city.Y < 0 || city.Y >= c.h || city.X+len(label) > c.w {
			return fmt.Errorf("%w: %s at (%d, %d)", ErrOutOfMap, label, city.X, city.Y)
		}
		for j = 0; j < len(label); j++ {
			c.dot[city.X+j][city.Y] = label[j]
		}
	}

	n := len(route)
	for i = 0; i < n; i++ {
		c.line(cities[route[i]], cities[route[(i+1)%n]])
	}

	return c.flush(w)
}

func (c *canvas) flush(w io.Writer) error {
	out := make([]byte, 0, len(Separator)+1+(c.w+1)*c.h)
	out = append(out, Separator...)
	out = append(out, '\n')

	var x, y int
	for y = 0; y < c.h; y++ {
		for x = 0; x < c.w; x++ {
			out = append(out, c.dot[x][y])
		}
		out = append(out, '\n')
	}

	_, err := w.Write(out)

	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
