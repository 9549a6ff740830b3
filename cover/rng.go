// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// rng.go — the random-source seam used by the greedy post-pass.
//
// Determinism policy:
//   • No time-based sources in this package. Options.Seed==0 maps to a fixed
//     default seed, so an unconfigured run is reproducible.
//   • Production callers that want fresh randomness inject one via WithRand
//     or pick a seed themselves.
//   • *rand.Rand is NOT goroutine-safe; never share one across goroutines.

package cover

import "math/rand"

// RandSource is the minimal randomness contract. *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform integer in [0,n); n > 0.
	Intn(n int) int
}

// defaultRNGSeed is used when Options.Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randSource resolves the effective source for one call.
func (o Options) randSource() RandSource {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// DeriveSeed mixes a parent seed and a stream id into an independent seed
// (SplitMix64 finalizer). Batch runners use it to give each request its own
// reproducible stream.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sampleWithoutReplacement picks min(m, len(from)) distinct elements of from,
// uniformly, via a partial Fisher–Yates shuffle on a copy.
//
// Complexity: O(len(from)) time and space.
func sampleWithoutReplacement(from []int, m int, r RandSource) []int {
	var pool = append([]int(nil), from...)
	if m > len(pool) {
		m = len(pool)
	}

	var i, j int
	for i = 0; i < m; i++ {
		j = i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:m]
}
