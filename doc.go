// Package citytour plans short closed tours over cities on an integer grid
// and draws them as ASCII maps.
//
// The module is organised as small flat packages:
//
//	geom/         City, Euclidean Distance, cyclic TourLength, precomputed Table
//	tsp/          stochastic 2-opt, steepest swap descent, exact branch-and-bound
//	cityio/       binary city files and random instance generation
//	render/       ASCII map of a city layout and its tour
//	experiment/   restart-count sweeps for steepest descent
//	cmd/citytour/ command-line driver (solve, experiment, gen)
//
// Every solver returns a route that starts at city 0 together with its
// length recomputed from scratch. Solvers never log and never panic on user
// input; they report problems through sentinel errors.
package citytour
