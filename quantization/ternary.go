package quantization

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TernaryQuantizer compresses real-valued hypervectors to {-1, 0, +1}.
// It keeps only the elements whose magnitude clears a per-vector quantile
// threshold, so a fixed fraction of every output is zero regardless of the
// input's scale.
//
// Trade-offs:
//   - 16x compression once packed (2 bits per dimension, see Pack)
//   - Integer-only similarity arithmetic on the sparse survivors
//   - Sign-only magnitudes; fine-grained ranking needs reranking upstream
type TernaryQuantizer struct {
	dimension int
	sparsity  float64
}

// NewTernaryQuantizer creates a quantizer that zeroes the given fraction of
// each vector. Sparsity must lie strictly between 0 and 1.
func NewTernaryQuantizer(dimension int, sparsity float64) (*TernaryQuantizer, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", dimension, ErrInvalidDimension)
	}

	if sparsity <= 0 || sparsity >= 1 || math.IsNaN(sparsity) {
		return nil, fmt.Errorf("sparsity %v: %w", sparsity, ErrInvalidSparsity)
	}

	return &TernaryQuantizer{dimension: dimension, sparsity: sparsity}, nil
}

// Dimension returns the expected vector dimension.
func (q *TernaryQuantizer) Dimension() int {
	return q.dimension
}

// Sparsity returns the configured zero fraction.
func (q *TernaryQuantizer) Sparsity() float64 {
	return q.sparsity
}

// Ternarize quantizes a real-valued vector to {-1, 0, +1}.
//
// The threshold t is the sparsity-quantile of the vector's absolute values.
// Elements strictly above t map to +1, strictly below -t map to -1, and
// everything else, ties at the threshold included, maps to 0. The zero
// fraction therefore lands on the configured sparsity up to threshold ties.
//
// The input is not mutated. Panics if len(v) differs from Dimension.
func (q *TernaryQuantizer) Ternarize(v []float32) []int8 {
	if len(v) != q.dimension {
		panic(fmt.Sprintf("quantization: vector length %d, want %d", len(v), q.dimension))
	}

	abs := make([]float64, len(v))
	for i, x := range v {
		abs[i] = math.Abs(float64(x))
	}
	sort.Float64s(abs)

	t := stat.Quantile(q.sparsity, stat.Empirical, abs, nil)

	out := make([]int8, len(v))
	for i, x := range v {
		switch {
		case float64(x) > t:
			out[i] = 1
		case float64(x) < -t:
			out[i] = -1
		}
	}

	return out
}

const quantizerStateSize = 12

// MarshalBinary serializes the quantizer configuration.
func (q *TernaryQuantizer) MarshalBinary() ([]byte, error) {
	buf := make([]byte, quantizerStateSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(q.dimension))
	binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(q.sparsity))

	return buf, nil
}

// UnmarshalBinary restores a quantizer serialized with MarshalBinary,
// validating the decoded configuration like NewTernaryQuantizer.
func (q *TernaryQuantizer) UnmarshalBinary(data []byte) error {
	if len(data) < quantizerStateSize {
		return fmt.Errorf("quantizer state: %w", ErrBufferTooShort)
	}

	dimension := int(binary.LittleEndian.Uint32(data[0:4]))
	sparsity := math.Float64frombits(binary.LittleEndian.Uint64(data[4:12]))

	restored, err := NewTernaryQuantizer(dimension, sparsity)
	if err != nil {
		return err
	}

	*q = *restored

	return nil
}
