// Package testutil provides testing utilities for hdcgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a thread-safe seeded RNG and fixture generators for the
// vector shapes the encoders consume and produce.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float32, 384)
//	rng.FillUniform(vec)                  // uniform [0, 1)
//	emb := rng.GaussianVector(384)        // standard normal
//	tv := rng.TernaryVector(10000, 0.7)   // {-1, 0, +1} at ~70% zeros
package testutil
