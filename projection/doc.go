// Package projection expands dense embeddings into hyperdimensional space
// through a fixed random linear map.
//
// The projection matrix is sampled once at construction from a seeded
// Gaussian source, with entries scaled by 1/sqrt(input dimension) so that
// pairwise inner products survive the expansion in expectation
// (Johnson-Lindenstrauss). The matrix never changes afterwards, so a single
// Projector is safe for concurrent use.
package projection
