// Package hypervector provides the bitpacked binary hypervector type and
// the hyperdimensional computing operators defined over it: Bind (XOR),
// Bundle (per-dimension majority vote) and Permute (cyclic bit shift).
//
// Vectors are immutable after construction: every operator returns a new
// vector, so values can be shared freely across goroutines without locking.
// Padding bits in the final word are always zero, which keeps popcount-based
// similarity exact for dimensions that are not multiples of 64.
package hypervector
