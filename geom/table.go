package geom

import "gonum.org/v1/gonum/mat"

// Table is a dense symmetric distance table over a fixed city set.
// Entry (i,j) equals Distance(cities[i], cities[j]); the diagonal is zero.
//
// Table is read-only after construction and safe for concurrent readers.
type Table struct {
	n int
	d *mat.SymDense
}

// NewTable precomputes all pairwise distances of cities.
// An empty input yields an empty table (Len()==0).
//
// Complexity: O(n²) time and space.
func NewTable(cities []City) *Table {
	var n = len(cities)
	if n == 0 {
		return &Table{}
	}

	var (
		d    = mat.NewSymDense(n, nil)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, Distance(cities[i], cities[j]))
		}
	}

	return &Table{n: n, d: d}
}

// Len reports the number of cities covered by the table.
func (t *Table) Len() int { return t.n }

// At returns the distance between cities i and j.
func (t *Table) At(i, j int) float64 { return t.d.At(i, j) }

// Length is TourLength evaluated through the table.
//
// Complexity: O(n).
func (t *Table) Length(route []int) float64 {
	var (
		n   = len(route)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += t.d.At(route[i], route[(i+1)%n])
	}

	return sum
}
