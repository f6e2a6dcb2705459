// Package testutil provides testing utilities for raygo.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random points and vectors for property tests.
//
// # Random Tuple Generation
//
//	rng := testutil.NewRNG(seed)
//	p := rng.Point()
//	vs := rng.Vectors(100)
//
// Coordinates lie on a quarter-unit grid in [-10, 10). Sums and differences of
// such values are exact in float32, so properties like (a + b) - b == a hold
// under the strict epsilon comparison of tuple.Equal.
package testutil
