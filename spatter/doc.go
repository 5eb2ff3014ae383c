// Package spatter implements a binary spatter code text encoder.
//
// Text is lowercased and whitespace-tokenized, a window of NGramSize tokens
// slides across the sequence with stride 1, each window symbol is bound
// (XOR) against a positional code derived by cyclically shifting a base
// vector by the symbol's offset, and all window vectors are bundled into a
// single hypervector by per-dimension majority vote.
//
// Basis vectors are generated on demand from a stable hash of the symbol
// seeded with the encoder configuration seed, so two encoders constructed
// with the same configuration produce bit-identical encodings, within and
// across processes. The symbol cache is safe for concurrent use; everything
// else is written once at construction and only read afterwards.
package spatter
