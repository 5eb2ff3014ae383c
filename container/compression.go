package container

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (better ratio, good for cold data).
	CompressionZSTD CompressionType = 2
)

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compressPayload compresses the payload with the requested codec. It
// returns the stored bytes together with the codec that actually applies:
// when compression does not help (ratio above 0.9, or incompressible input)
// the payload is returned untouched under CompressionNone.
func compressPayload(payload []byte, t CompressionType) ([]byte, CompressionType, error) {
	if t == CompressionNone || len(payload) == 0 {
		return payload, CompressionNone, nil
	}

	var compressed []byte

	switch t {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("compress lz4: %w", err)
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		compressed = enc.EncodeAll(payload, nil)
	default:
		return nil, 0, fmt.Errorf("codec %d: %w", t, ErrInvalidCompression)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(payload))*0.9 {
		return payload, CompressionNone, nil
	}

	return compressed, t, nil
}

// decompressPayload reverses compressPayload. For CompressionNone the stored
// bytes are returned without copying.
func decompressPayload(stored []byte, uncompressedSize int, t CompressionType) ([]byte, error) {
	switch t {
	case CompressionNone:
		return stored, nil

	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(stored, result)
		if err != nil {
			return nil, fmt.Errorf("decompress lz4: %w", err)
		}
		return result[:n], nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(stored, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("decompress zstd: %w", err)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("codec %d: %w", t, ErrInvalidCompression)
	}
}
