// Package anneal - RNG utilities for capability implementations.
//
// Source centralizes deterministic random generation for annealers.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams across platforms.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//   - Ownership: a Source is owned by exactly one annealer during a run.
//
// Concurrency:
//   - Source wraps math/rand.Rand and is NOT goroutine-safe.
//   - Derive splits named sub-streams off a seed (setup vs. run).
package anneal

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Source is a seeded uniform random source.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource returns a deterministic Source.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the effective seed the Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Random returns the next uniform value in [0,1).
func (s *Source) Random() float64 { return s.rng.Float64() }

// Intn returns a uniform int in [0,n). It panics if n <= 0, like math/rand.
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }

// Shuffle performs a Fisher–Yates shuffle of n elements through swap.
//
// Complexity: O(n) time, O(1) extra space.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = s.rng.Intn(i + 1)
		swap(i, j)
	}
}

// Derive returns a Source for a named sub-stream of s. The child seed
// depends only on s's seed and stream, never on how far s has been read, so
// a consumer can split setup randomness from run randomness and still replay
// either half alone. s itself is left untouched.
func (s *Source) Derive(stream uint64) *Source {
	return NewSource(streamSeed(s.seed, stream))
}

// streamSeed hashes (seed, stream) through the SplitMix64 finalizer.
func streamSeed(seed int64, stream uint64) int64 {
	const golden = 0x9e3779b97f4a7c15
	z := uint64(seed) + golden*(stream+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
