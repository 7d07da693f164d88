// SPDX-License-Identifier: MIT
// Package: eyesclosed/matching
//
// rng.go - deterministic randomness for priority orders.
//
// Goals:
//   - Determinism: same seed ⇒ identical orders and matchings.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Sample derives one stream per draw.

package matching

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or a nil *rand.Rand.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer,
// giving well separated per-draw seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// permutation returns a uniformly random permutation of [0, n) built by an
// in-place Fisher–Yates shuffle. rng==nil uses the default stream.
// Complexity: O(n).
func permutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
