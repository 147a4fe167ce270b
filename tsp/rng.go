// Package tsp - seeded random streams for the randomized solvers.
//
// Every random decision (initial routes, 2-opt candidate draws, acceptance
// tests) comes from Options.Seed; the wall clock is never consulted. Run or
// restart k draws from its own *rand.Rand, seeded by mixing the k-th value
// of a top-level stream with k. A *rand.Rand is not goroutine-safe and is
// never shared between runs.
package tsp

import "math/rand"

// seedFallback replaces a zero Options.Seed.
const seedFallback int64 = 1

// golden is the SplitMix64 increment (2⁶⁴/φ).
const golden uint64 = 0x9e3779b97f4a7c15

// streams hands out one generator per run or restart.
type streams struct {
	top *rand.Rand
}

func newStreams(seed int64) streams {
	if seed == 0 {
		seed = seedFallback
	}

	return streams{top: rand.New(rand.NewSource(seed))}
}

// next returns the generator for run k. Runs must ask in order k = 0, 1, …
// so that run k sees the same stream however many runs follow it.
func (s streams) next(k int) *rand.Rand {
	return rand.New(rand.NewSource(mix(s.top.Int63(), uint64(k))))
}

// mix applies the SplitMix64 finalizer to parent combined with k.
func mix(parent int64, k uint64) int64 {
	z := uint64(parent) ^ (k + golden)
	z += golden
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return int64(z ^ z>>31)
}

// DeriveSeed returns the seed of child k of parent, for callers that fan
// out independent solver calls (experiment trials) from one seed. The
// result is never 0, so a child never falls back to the default stream.
func DeriveSeed(parent int64, k uint64) int64 {
	if s := mix(parent, k); s != 0 {
		return s
	}

	return seedFallback
}
