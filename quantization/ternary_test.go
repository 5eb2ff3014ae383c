package quantization

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTernaryQuantizer(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		q, err := NewTernaryQuantizer(10000, 0.7)
		require.NoError(t, err)
		assert.Equal(t, 10000, q.Dimension())
		assert.Equal(t, 0.7, q.Sparsity())
	})

	t.Run("InvalidDimension", func(t *testing.T) {
		_, err := NewTernaryQuantizer(0, 0.7)
		require.ErrorIs(t, err, ErrInvalidDimension)

		_, err = NewTernaryQuantizer(-3, 0.7)
		require.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("InvalidSparsity", func(t *testing.T) {
		for _, sparsity := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
			_, err := NewTernaryQuantizer(100, sparsity)
			require.ErrorIs(t, err, ErrInvalidSparsity, "sparsity %v", sparsity)
		}
	})
}

func TestTernarize(t *testing.T) {
	t.Run("KnownThreshold", func(t *testing.T) {
		q, err := NewTernaryQuantizer(8, 0.5)
		require.NoError(t, err)

		// Sorted magnitudes are [0.1 0.2 0.5 1 2 3 5 7]; the 0.5 quantile
		// threshold is 1, and the element sitting exactly on it drops to 0.
		got := q.Ternarize([]float32{5, -3, 0.5, -0.2, 1, -7, 2, 0.1})
		assert.Equal(t, []int8{1, -1, 0, 0, 0, -1, 1, 0}, got)
	})

	t.Run("TiesFailTowardZero", func(t *testing.T) {
		q, err := NewTernaryQuantizer(4, 0.5)
		require.NoError(t, err)

		got := q.Ternarize([]float32{1, -1, 2, -2})
		assert.Equal(t, []int8{0, 0, 1, -1}, got)
	})

	t.Run("AllZerosInput", func(t *testing.T) {
		q, err := NewTernaryQuantizer(6, 0.5)
		require.NoError(t, err)

		got := q.Ternarize(make([]float32, 6))
		assert.Equal(t, make([]int8, 6), got)
	})

	t.Run("ZeroFractionTracksSparsity", func(t *testing.T) {
		const (
			dim      = 10000
			sparsity = 0.7
		)

		q, err := NewTernaryQuantizer(dim, sparsity)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(42)) //nolint gosec
		v := make([]float32, dim)
		for i := range v {
			v[i] = float32(rng.NormFloat64())
		}

		got := q.Ternarize(v)

		var zeros, positives, negatives int
		for _, x := range got {
			switch x {
			case 0:
				zeros++
			case 1:
				positives++
			case -1:
				negatives++
			}
		}

		assert.InDelta(t, sparsity, float64(zeros)/dim, 2.0/dim)
		// Symmetric input splits the survivors about evenly by sign.
		assert.InDelta(t, positives, negatives, 220)
	})

	t.Run("ScaleInvariantSupport", func(t *testing.T) {
		q, err := NewTernaryQuantizer(8, 0.5)
		require.NoError(t, err)

		v := []float32{5, -3, 0.5, -0.2, 1, -7, 2, 0.1}
		scaled := make([]float32, len(v))
		for i := range v {
			scaled[i] = v[i] * 1000
		}

		assert.Equal(t, q.Ternarize(v), q.Ternarize(scaled))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		q, err := NewTernaryQuantizer(4, 0.5)
		require.NoError(t, err)

		v := []float32{3, -1, 4, -1.5}
		q.Ternarize(v)
		assert.Equal(t, []float32{3, -1, 4, -1.5}, v)
	})

	t.Run("PanicsOnLengthMismatch", func(t *testing.T) {
		q, err := NewTernaryQuantizer(4, 0.5)
		require.NoError(t, err)

		assert.Panics(t, func() { q.Ternarize([]float32{1, 2}) })
	})
}

func TestTernaryQuantizerMarshal(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		q, err := NewTernaryQuantizer(10000, 0.7)
		require.NoError(t, err)

		data, err := q.MarshalBinary()
		require.NoError(t, err)

		var restored TernaryQuantizer
		require.NoError(t, restored.UnmarshalBinary(data))
		assert.Equal(t, q.Dimension(), restored.Dimension())
		assert.Equal(t, q.Sparsity(), restored.Sparsity())
	})

	t.Run("TooShort", func(t *testing.T) {
		var q TernaryQuantizer
		err := q.UnmarshalBinary(make([]byte, 4))
		require.ErrorIs(t, err, ErrBufferTooShort)
	})

	t.Run("InvalidState", func(t *testing.T) {
		buf := make([]byte, quantizerStateSize)
		binary.LittleEndian.PutUint32(buf[0:4], 100)
		binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(1.5))

		var q TernaryQuantizer
		err := q.UnmarshalBinary(buf)
		require.ErrorIs(t, err, ErrInvalidSparsity)
	})
}

func BenchmarkTernarize(b *testing.B) {
	q, err := NewTernaryQuantizer(10000, 0.7)
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42)) //nolint gosec
	v := make([]float32, 10000)
	for i := range v {
		v[i] = float32(rng.NormFloat64())
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = q.Ternarize(v)
	}
}
