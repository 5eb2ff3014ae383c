// Package hdcgo provides hyperdimensional computing encoders for Go.
//
// Hdcgo maps text and dense embeddings into very wide, noise-tolerant
// vectors whose pairwise similarity survives aggressive compression. Two
// encoders cover the two input kinds:
//
//   - BinarySpatterEncoder: text to binary hypervectors via positional
//     n-gram binding and majority-vote bundling
//   - TernaryEncoder: float32 embeddings to sparse {-1, 0, +1} vectors via
//     seeded random projection and quantile thresholding
//
// # Quick Start
//
// Text encoding and similarity:
//
//	enc, _ := hdcgo.NewBinarySpatterEncoder(hdcgo.DefaultDimension, hdcgo.DefaultNGramSize, 42)
//	a := enc.Encode("the cat sat on the mat")
//	b := enc.Encode("the cat sat on the rug")
//	fmt.Println(enc.Similarity(a, b)) // high: the sentences share most windows
//
// Embedding compression for transmission:
//
//	enc, _ := hdcgo.NewTernaryEncoder(hdcgo.DefaultDimension, hdcgo.DefaultSparsity, 42, hdcgo.DefaultInputDim)
//	ternary, _ := enc.EncodeEmbedding(embedding) // 384 floats in, 10000 trits out
//	packed, _ := enc.Pack(ternary)               // 2500 bytes on the wire
//	restored, _ := enc.Unpack(packed)            // bit-exact round trip
//
// Both encoders are deterministic per (parameters, seed) configuration:
// independent processes built with the same configuration agree bit for
// bit, so packed vectors can be compared across machine boundaries.
//
// # Subpackages
//
//   - hypervector: binary vector type with Bind/Bundle/Permute operators
//   - spatter: tokenizer, symbol table, and the text encoding pipeline
//   - projection: seeded Gaussian random projection
//   - quantization: ternary quantizer and the 2-bit packed codec
//   - similarity: Hamming and normalized cosine comparators
//   - container: self-describing compressed frames for packed vector sets
//   - store: in-memory top-k similarity store with tag filtering
//   - resource: concurrency and throughput limits for batch encoding
//   - observability: Prometheus implementation of MetricsCollector
//
// # Key Features
//
//   - Deterministic, seed-addressed vector spaces
//   - 16x wire compression vs float32 at equal dimension
//   - Integer-only similarity on packed vectors after decode
//   - Batch encoding with bounded concurrency and rate limits
//   - Structured logging (slog) and pluggable metrics
package hdcgo
