// Package similarity provides bounded similarity scores for encoded vectors.
//
// All scores fall in [0, 1], where 1 means identical and 0.5 means unrelated.
//
// # Supported Metrics
//
//   - MetricCosine: Cosine similarity shifted from [-1, 1] into [0, 1] (ternary and float vectors)
//   - MetricHamming: Fraction of agreeing bit positions (binary hypervectors)
//
// # Usage
//
//	sim := similarity.CosineTernary(a, b)
//	sim := similarity.Hamming(hv1, hv2)
package similarity
