// Package tsp - route utilities shared by all solvers.
//
// A route is an open cyclic order over {0..n-1}: len(route)==n, no repeated
// closing vertex, route[0]==0 for every route a solver returns.
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateRoute: permutation + fixed start at city 0.
//   - ReverseRoute: the mirror tour with the same start.
//   - EqualRoutesModuloRotation / SameCycle: cycle equality checks.
//   - CopyRoute: independent copy.
//   - identityRoute / randomRoute: initial routes (city 0 fixed at position 0).
//   - reverseSegmentInPlace / swapInPlace: the two move primitives.
//   - DebugString: compact printable representation.
package tsp

import (
	"math/rand"
	"strconv"
	"strings"
)

// unassigned marks an empty slot in a partially built route. It lies outside
// the valid index range so it can never be confused with city 0.
const unassigned = -1

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidRoute
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidRoute
		}
		seen[v] = true
	}

	return nil
}

// ValidateRoute enforces the solver output contract: a permutation of
// {0..n-1} that starts at city 0.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route []int, n int) error {
	if err := ValidatePermutation(route, n); err != nil {
		return err
	}
	if route[0] != 0 {
		return ErrInvalidRoute
	}

	return nil
}

// ReverseRoute returns the same cycle traversed in the opposite direction,
// keeping route[0] in front: [s a b c] → [s c b a].
//
// Complexity: O(n) time, O(n) space.
func ReverseRoute(route []int) []int {
	var n = len(route)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	out[0] = route[0]

	var i int
	for i = 1; i < n; i++ {
		out[i] = route[n-i]
	}

	return out
}

// CopyRoute returns an independent copy of route (nil stays nil).
//
// Complexity: O(n) time, O(n) space.
func CopyRoute(route []int) []int {
	if route == nil {
		return nil
	}
	out := make([]int, len(route))
	copy(out, route)

	return out
}

// EqualRoutesModuloRotation reports whether a and b describe the same cycle
// in the same direction, regardless of where each one starts.
//
// Complexity: O(n) time.
func EqualRoutesModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}

	var (
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// SameCycle reports whether a and b describe the same undirected cycle:
// equal modulo rotation in either direction.
func SameCycle(a, b []int) bool {
	return EqualRoutesModuloRotation(a, b) || EqualRoutesModuloRotation(a, ReverseRoute(b))
}

// DebugString returns a compact representation such as "0 -> 3 -> 1 -> 2 -> 0".
// An empty route prints as "(no tour)".
//
// Complexity: O(n).
func DebugString(route []int) string {
	if len(route) == 0 {
		return "(no tour)"
	}
	var (
		b strings.Builder
		i int
	)
	for i = 0; i < len(route); i++ {
		b.WriteString(strconv.Itoa(route[i]))
		b.WriteString(" -> ")
	}
	b.WriteString(strconv.Itoa(route[0]))

	return b.String()
}

// identityRoute returns [0, 1, …, n−1].
func identityRoute(n int) []int {
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// randomRoute returns a uniformly random route: positions [1,n) are
// shuffled (Fisher-Yates, last slot first) and city 0 stays in front.
//
// Complexity: O(n) time, O(n) space.
func randomRoute(n int, rng *rand.Rand) []int {
	route := identityRoute(n)

	var p, q int
	for p = n - 1; p >= 2; p-- {
		q = 1 + rng.Intn(p)
		route[p], route[q] = route[q], route[p]
	}

	return route
}

// reverseSegmentInPlace reverses route[i..k] (inclusive) by swapping mirrored
// pairs until the midpoint. i ≥ k is a no-op.
//
// Complexity: O(k−i) time, O(1) space.
func reverseSegmentInPlace(route []int, i, k int) {
	for i < k {
		route[i], route[k] = route[k], route[i]
		i++
		k--
	}
}

// swapInPlace exchanges the cities at positions i and j.
func swapInPlace(route []int, i, j int) {
	route[i], route[j] = route[j], route[i]
}
