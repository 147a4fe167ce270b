// Package tsp - move-delta helpers shared by the local-search solvers.
//
// Both helpers read distances through a precomputed geom.Table and touch
// only the O(1) edges a move changes. Final answer lengths are always
// recomputed from the route with geom.TourLength; deltas only drive
// acceptance decisions.
package tsp

import "github.com/katalvlaran/citytour/geom"

// reversalDelta is the length change of the 2-opt move that reverses
// route[i+1..j-1]: edges (i,i+1) and (j-1,j) are replaced by (i,j-1) and
// (i+1,j), all taken as route positions.
//
// Contract: 1 ≤ i, i+2 < j ≤ n−1, so i+1 and j−1 never wrap.
//
// Complexity: O(1).
func reversalDelta(tab *geom.Table, route []int, i, j int) float64 {
	var (
		a = route[i]
		b = route[i+1]
		c = route[j-1]
		d = route[j]
	)

	return -tab.At(a, b) - tab.At(c, d) + tab.At(a, c) + tab.At(b, d)
}

// swapDelta is the length change of exchanging the cities at positions i and j.
// It subtracts the four edges adjacent to i and j, performs the swap, re-sums
// the four new adjacent edges and undoes the swap, so route is unchanged on
// return. Adjacent positions share an edge that is counted twice on both
// sides, which cancels because the table is symmetric.
//
// Contract: 1 ≤ i < j ≤ n−1.
//
// Complexity: O(1).
func swapDelta(tab *geom.Table, route []int, i, j int) float64 {
	var diff = -adjacentEdges(tab, route, i, j)
	swapInPlace(route, i, j)
	diff += adjacentEdges(tab, route, i, j)
	swapInPlace(route, i, j)

	return diff
}

// adjacentEdges sums the edges entering and leaving positions i and j (cyclic).
func adjacentEdges(tab *geom.Table, route []int, i, j int) float64 {
	var n = len(route)

	return tab.At(route[i], route[(i+n-1)%n]) +
		tab.At(route[i], route[(i+1)%n]) +
		tab.At(route[j], route[(j+n-1)%n]) +
		tab.At(route[j], route[(j+1)%n])
}
