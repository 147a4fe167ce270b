package geom

import "math"

// Distance returns the Euclidean distance between a and b.
// Coincident cities yield exactly 0 (no division, no NaN).
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	var (
		dx = float64(a.X - b.X)
		dy = float64(a.Y - b.Y)
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// TourLength sums Distance over consecutive route positions including the
// closing edge route[n-1]→route[0]. The route is treated as an open cyclic
// order (no repeated start at the end). Indices are not validated here;
// callers pass routes produced or checked by the solvers.
//
// Complexity: O(n) time, O(1) space.
func TourLength(cities []City, route []int) float64 {
	var (
		n   = len(route)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += Distance(cities[route[i]], cities[route[(i+1)%n]])
	}

	return sum
}

// Validate checks the only structural precondition the distance model has:
// at least two cities. Integer coordinates are always finite.
func Validate(cities []City) error {
	if len(cities) < 2 {
		return ErrTooFewCities
	}

	return nil
}
