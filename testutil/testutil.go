package testutil

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Int32 returns a pseudo-random int32 over the full signed range.
func (r *RNG) Int32() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Uint32())
}

// FillInt32 fills dst with values over the full int32 range.
// Locks only once per call (preferred over calling Int32 in a loop).
func (r *RNG) FillInt32(dst []int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = int32(r.rand.Uint32())
	}
}

// FillInt32N fills dst with values in range [0, n).
func (r *RNG) FillInt32N(dst []int32, n int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Int32N(n)
	}
}

// Int32s returns n values over the full int32 range.
func (r *RNG) Int32s(n int) []int32 {
	dst := make([]int32, n)
	r.FillInt32(dst)
	return dst
}

// SortedInt32s returns n ascending values in [0, maxVal) with duplicates.
func (r *RNG) SortedInt32s(n int, maxVal int32) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	dst := make([]int32, n)
	if n == 0 {
		return dst
	}

	// Walk upwards with small random steps so runs of equal values occur.
	step := max(int32(1), maxVal/int32(min(n, math.MaxInt32)))
	var v int32
	for i := range dst {
		dst[i] = v
		if next := v + r.rand.Int32N(step+1); next >= v && next < maxVal {
			v = next
		}
	}

	return dst
}

// Distribution names a data shape used to exercise sorting edge cases.
type Distribution struct {
	Name string
	gen  func(r *RNG, i, n int) int32
}

// Generate returns n values shaped by the distribution.
func (d Distribution) Generate(r *RNG, n int) []int32 {
	dst := make([]int32, n)
	for i := range dst {
		dst[i] = d.gen(r, i, n)
	}
	return dst
}

// Distributions returns the data shapes known to hit the different
// partitioning paths of a quicksort: random, presorted, reversed, constant,
// low cardinality, organ pipe, sawtooth and extreme values.
func Distributions() []Distribution {
	return []Distribution{
		{"random", func(r *RNG, _, _ int) int32 { return r.Int32() }},
		{"ascending", func(_ *RNG, i, _ int) int32 { return int32(i) }},
		{"descending", func(_ *RNG, i, n int) int32 { return int32(n - i) }},
		{"all equal", func(_ *RNG, _, _ int) int32 { return 7 }},
		{"two values", func(_ *RNG, i, _ int) int32 { return int32(i % 2) }},
		{"low cardinality", func(r *RNG, _, _ int) int32 { return int32(r.IntN(4)) }},
		{"organ pipe", func(_ *RNG, i, n int) int32 { return int32(min(i, n-i)) }},
		{"sawtooth", func(_ *RNG, i, _ int) int32 { return int32(i % 17) }},
		{"extremes", func(_ *RNG, i, _ int) int32 {
			if i%3 == 0 {
				return math.MinInt32
			}
			return math.MaxInt32
		}},
	}
}
