// Package geom is the distance model shared by every citytour solver.
//
// Cities live on an integer grid; distances are plain Euclidean distances
// evaluated in float64. Two entry points cover everything the solvers need:
//
//   - Distance(a, b)         : sqrt(dx²+dy²); symmetric, exactly 0 for coincident cities.
//   - TourLength(cities, r)  : cyclic sum over r[i]→r[(i+1) mod n], wrap edge included.
//
// Table precomputes all pairwise distances once (gonum SymDense) so that hot
// loops in local search and branch-and-bound read a flat buffer instead of
// recomputing square roots. Table values are bit-identical to Distance.
//
// Nothing in this package allocates on the hot path, logs, or panics on
// well-formed input.
package geom
