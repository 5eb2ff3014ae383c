// Package quantization compresses real-valued hypervectors into sparse
// ternary form and packs the result for transmission.
//
// # Ternary Quantization
//
// Keeps the sign of the largest-magnitude elements and zeroes the rest,
// thresholded at a per-vector quantile so every output has the same zero
// fraction:
//
//	q, err := quantization.NewTernaryQuantizer(10000, 0.7)
//	t := q.Ternarize(projected) // 70% zeros, signs elsewhere
//
// # Bit Packing
//
// Ternary elements travel at 2 bits each, four per byte:
//
//	packed := quantization.Pack(t)                  // ceil(10000/4) = 2500 bytes
//	back, err := quantization.Unpack(packed, 10000)
//
// The packed form is bit-exact: Unpack(Pack(v), len(v)) reproduces v for
// every valid ternary v. Malformed buffers surface as a FormatError and are
// never patched over.
//
// # Storage Comparison
//
//	| Form           | Bytes at D=10000 | vs float32 |
//	|----------------|------------------|------------|
//	| float32        | 40000            | 1x         |
//	| float16        | 20000            | 2x         |
//	| packed ternary | 2500             | 16x        |
package quantization
