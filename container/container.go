package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/hupe1980/hdcgo/quantization"
)

const (
	// Magic identifies ternary container frames (ASCII "HDT1" once
	// little-endian encoded).
	Magic = 0x31544448
	// Version is the current frame format version.
	Version = 1

	headerSize = 24

	// compressionMask selects the codec bits of the header flags; the
	// remaining flag bits are reserved and must be zero.
	compressionMask = 0x0003
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression codec")
	ErrInvalidHeader      = errors.New("invalid header field")
	ErrTruncated          = errors.New("truncated frame")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrVectorSize         = errors.New("vector size mismatch")
)

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial, which is
// hardware accelerated on x86 (SSE4.2) and ARM.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Batch is a set of packed ternary vectors sharing one dimension.
//
// Frame layout (all fields little-endian):
//
//	[0:4]   magic "HDT1"
//	[4:6]   version
//	[6:8]   flags (bits 1-0: compression codec, rest reserved)
//	[8:12]  dimension
//	[12:16] vector count
//	[16:20] stored payload size in bytes
//	[20:24] CRC32-C of the uncompressed payload
//	[24:]   payload
type Batch struct {
	// Dimension is the ternary vector length shared by all entries.
	Dimension int
	// Compression selects the payload codec for MarshalBinary. After
	// UnmarshalBinary it reports how the payload was actually stored,
	// which may be CompressionNone if the writer's codec did not pay off.
	Compression CompressionType
	// Vectors holds packed ternary vectors of quantization.PackedSize(Dimension)
	// bytes each.
	Vectors [][]byte
}

// MarshalBinary serializes the batch into a single framed buffer.
func (b *Batch) MarshalBinary() ([]byte, error) {
	if b.Dimension <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", b.Dimension, ErrInvalidHeader)
	}

	packedSize := quantization.PackedSize(b.Dimension)

	payload := make([]byte, 0, len(b.Vectors)*packedSize)
	for i, v := range b.Vectors {
		if len(v) != packedSize {
			return nil, fmt.Errorf("vector %d has %d bytes, want %d: %w", i, len(v), packedSize, ErrVectorSize)
		}

		payload = append(payload, v...)
	}

	checksum := crc32.Checksum(payload, crc32cTable)

	stored, codec, err := compressPayload(payload, b.Compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize+len(stored))
	binary.LittleEndian.PutUint32(out[0:4], Magic)
	binary.LittleEndian.PutUint16(out[4:6], Version)
	binary.LittleEndian.PutUint16(out[6:8], uint16(codec))
	binary.LittleEndian.PutUint32(out[8:12], uint32(b.Dimension))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(b.Vectors)))
	binary.LittleEndian.PutUint32(out[16:20], uint32(len(stored)))
	binary.LittleEndian.PutUint32(out[20:24], checksum)
	copy(out[headerSize:], stored)

	return out, nil
}

// UnmarshalBinary restores a batch from a framed buffer. The decoded vectors
// may share the input's backing array when the payload was stored
// uncompressed; trailing bytes beyond the frame are ignored.
func (b *Batch) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%d byte frame: %w", len(data), ErrTruncated)
	}

	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != Magic {
		return fmt.Errorf("0x%08x: %w", magic, ErrInvalidMagic)
	}

	if version := binary.LittleEndian.Uint16(data[4:6]); version != Version {
		return fmt.Errorf("version %d: %w", version, ErrInvalidVersion)
	}

	flags := binary.LittleEndian.Uint16(data[6:8])
	if flags&^uint16(compressionMask) != 0 {
		return fmt.Errorf("reserved flags 0x%04x: %w", flags, ErrInvalidHeader)
	}

	codec := CompressionType(flags & compressionMask)
	if codec > CompressionZSTD {
		return fmt.Errorf("codec %d: %w", codec, ErrInvalidCompression)
	}

	dimension := int(binary.LittleEndian.Uint32(data[8:12]))
	if dimension <= 0 {
		return fmt.Errorf("dimension %d: %w", dimension, ErrInvalidHeader)
	}

	count := int(binary.LittleEndian.Uint32(data[12:16]))
	storedSize := int(binary.LittleEndian.Uint32(data[16:20]))
	checksum := binary.LittleEndian.Uint32(data[20:24])

	if len(data) < headerSize+storedSize {
		return fmt.Errorf("payload %d of %d bytes: %w", len(data)-headerSize, storedSize, ErrTruncated)
	}

	packedSize := quantization.PackedSize(dimension)
	expected64 := uint64(count) * uint64(packedSize)
	if expected64 > uint64(math.MaxInt) {
		return fmt.Errorf("payload of %d vectors: %w", count, ErrInvalidHeader)
	}
	expected := int(expected64)

	payload, err := decompressPayload(data[headerSize:headerSize+storedSize], expected, codec)
	if err != nil {
		return err
	}

	if len(payload) != expected {
		return fmt.Errorf("payload %d bytes, want %d: %w", len(payload), expected, ErrTruncated)
	}

	if got := crc32.Checksum(payload, crc32cTable); got != checksum {
		return fmt.Errorf("0x%08x, want 0x%08x: %w", got, checksum, ErrChecksumMismatch)
	}

	vectors := make([][]byte, count)
	for i := range vectors {
		vectors[i] = payload[i*packedSize : (i+1)*packedSize]
	}

	b.Dimension = dimension
	b.Compression = codec
	b.Vectors = vectors

	return nil
}
