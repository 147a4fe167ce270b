package geom_test

import (
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_MatchesDistance(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 7, Y: 3}, {X: -4, Y: 11}, {X: 20, Y: 20}}
	tab := geom.NewTable(cities)
	require.Equal(t, len(cities), tab.Len())

	var i, j int
	for i = range cities {
		for j = range cities {
			assert.Equal(t, geom.Distance(cities[i], cities[j]), tab.At(i, j), "(%d,%d)", i, j)
		}
	}
}

func TestTable_LengthMatchesTourLength(t *testing.T) {
	cities := []geom.City{{X: 3, Y: 7}, {X: 12, Y: 1}, {X: 25, Y: 18}, {X: 9, Y: 30}, {X: 1, Y: 22}}
	route := []int{0, 3, 1, 4, 2}
	tab := geom.NewTable(cities)

	// Same summation order over identical values: bit-identical.
	assert.Equal(t, geom.TourLength(cities, route), tab.Length(route))
}

func TestTable_Empty(t *testing.T) {
	tab := geom.NewTable(nil)
	assert.Equal(t, 0, tab.Len())
}
