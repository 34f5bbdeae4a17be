// Package testutil provides testing utilities for offheap.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for int32 data
// sets with the distributions that stress sorting and searching code.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Int32s(1000)            // full int32 range
//	rng.FillInt32N(data, 4)             // low cardinality [0, 4)
//
// # Distributions
//
//	for _, d := range testutil.Distributions() {
//		data := d.Generate(rng, n)
//	}
package testutil
