package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/render"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func small() render.Options { return render.Options{Width: 12, Height: 4} }

func twoCities() []geom.City {
	return []geom.City{{X: 0, Y: 0}, {X: 8, Y: 3}}
}

func TestPlot_LayoutOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Plot(&buf, twoCities(), nil, small()))

	want := strings.Join([]string{
		"----------",
		"C_0         ",
		"            ",
		"            ",
		"        C_1 ",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// The "no tour" answer draws the same map as a nil route.
func TestPlot_NoTourMatchesLayout(t *testing.T) {
	var layout, none bytes.Buffer
	require.NoError(t, render.Plot(&layout, twoCities(), nil, small()))
	require.NoError(t, render.Plot(&none, twoCities(), tsp.NoTour.Route, small()))
	assert.Equal(t, layout.String(), none.String())
	assert.NotContains(t, none.String(), "*")
}

// Both directions of the edge are traced; labels are never overwritten.
func TestPlot_Route(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Plot(&buf, twoCities(), []int{0, 1}, small()))

	want := strings.Join([]string{
		"----------",
		"C_0         ",
		" *****      ",
		"   *****    ",
		"      **C_1 ",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPlot_CoincidentCities(t *testing.T) {
	cities := []geom.City{{X: 1, Y: 1}, {X: 1, Y: 1}}

	var buf bytes.Buffer
	require.NoError(t, render.Plot(&buf, cities, []int{0, 1}, render.Options{Width: 5, Height: 2}))
	// City 1's label overwrites city 0's; no edge cells exist.
	assert.Equal(t, "----------\n     \n C_1 \n", buf.String())
}

func TestPlot_DefaultSize(t *testing.T) {
	opts := render.DefaultOptions()
	assert.Equal(t, 70, opts.Width)
	assert.Equal(t, 40, opts.Height)

	var buf bytes.Buffer
	require.NoError(t, render.Plot(&buf, twoCities(), []int{1, 0}, opts))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+opts.Height)
	assert.Equal(t, render.Separator, lines[0])
	for _, l := range lines[1:] {
		assert.Len(t, l, opts.Width)
	}
}

func TestPlot_OutOfMap(t *testing.T) {
	cases := [][]geom.City{
		{{X: 0, Y: 0}, {X: 10, Y: 0}}, // "C_1" needs columns 10..12
		{{X: 0, Y: 0}, {X: 0, Y: 4}},
		{{X: -1, Y: 0}, {X: 0, Y: 1}},
	}
	for _, cities := range cases {
		err := render.Plot(&bytes.Buffer{}, cities, nil, small())
		assert.ErrorIs(t, err, render.ErrOutOfMap, "%v", cities)
	}

	err := render.Plot(&bytes.Buffer{}, twoCities(), nil, render.Options{})
	assert.ErrorIs(t, err, render.ErrOutOfMap)
}

func TestPlot_BadRoute(t *testing.T) {
	for _, route := range [][]int{{0}, {0, 0}, {0, 2}} {
		err := render.Plot(&bytes.Buffer{}, twoCities(), route, small())
		assert.ErrorIs(t, err, render.ErrBadRoute, "%v", route)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPlot_WriterError(t *testing.T) {
	err := render.Plot(brokenWriter{}, twoCities(), nil, small())
	assert.EqualError(t, err, "closed pipe")
}
