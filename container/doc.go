// Package container frames batches of packed ternary vectors for storage and
// transmission.
//
// A container is a single self-describing byte frame: a fixed 24-byte header
// (magic, version, compression flag, dimension, vector count, payload size,
// CRC32-C checksum) followed by the payload, which is the concatenation of
// the batch's packed vectors, optionally compressed as a whole with LZ4 or
// ZSTD. The checksum always covers the uncompressed payload, so corruption
// is caught no matter which codec carried the bytes.
//
//	batch := &container.Batch{
//	    Dimension:   10000,
//	    Compression: container.CompressionZSTD,
//	    Vectors:     packed,
//	}
//	frame, err := batch.MarshalBinary()
//
// Compression that does not pay for itself falls back to storing the payload
// uncompressed; readers never need to know what the writer attempted.
package container
