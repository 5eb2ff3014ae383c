package projection

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := New(Config{InputDim: 8, OutputDim: 32, Seed: 1})
		require.NoError(t, err)
		assert.Equal(t, 8, p.InputDim())
		assert.Equal(t, 32, p.OutputDim())
	})

	t.Run("InvalidInputDim", func(t *testing.T) {
		_, err := New(Config{InputDim: 0, OutputDim: 32})
		require.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("InvalidOutputDim", func(t *testing.T) {
		_, err := New(Config{InputDim: 8, OutputDim: -1})
		require.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestProject(t *testing.T) {
	t.Run("OutputLength", func(t *testing.T) {
		p, err := New(Config{InputDim: 4, OutputDim: 16, Seed: 1})
		require.NoError(t, err)

		out := p.Project([]float32{1, 2, 3, 4})
		assert.Len(t, out, 16)
	})

	t.Run("Deterministic", func(t *testing.T) {
		p1, err := New(Config{InputDim: 16, OutputDim: 64, Seed: 42})
		require.NoError(t, err)
		p2, err := New(Config{InputDim: 16, OutputDim: 64, Seed: 42})
		require.NoError(t, err)

		in := make([]float32, 16)
		for i := range in {
			in[i] = float32(i) - 8
		}

		assert.Equal(t, p1.Project(in), p2.Project(in))
	})

	t.Run("SeedChangesMatrix", func(t *testing.T) {
		p1, err := New(Config{InputDim: 16, OutputDim: 64, Seed: 42})
		require.NoError(t, err)
		p2, err := New(Config{InputDim: 16, OutputDim: 64, Seed: 43})
		require.NoError(t, err)

		in := make([]float32, 16)
		in[0] = 1

		assert.NotEqual(t, p1.Project(in), p2.Project(in))
	})

	t.Run("Linear", func(t *testing.T) {
		p, err := New(Config{InputDim: 8, OutputDim: 32, Seed: 7})
		require.NoError(t, err)

		a := []float32{1, 0, 2, 0, -1, 3, 0, 1}
		b := []float32{0, 1, -2, 1, 1, 0, 2, -1}
		sum := make([]float32, len(a))
		for i := range sum {
			sum[i] = a[i] + b[i]
		}

		pa := p.Project(a)
		pb := p.Project(b)
		psum := p.Project(sum)
		for j := range psum {
			assert.InDelta(t, float64(pa[j]+pb[j]), float64(psum[j]), 1e-3)
		}
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		p, err := New(Config{InputDim: 4, OutputDim: 8, Seed: 1})
		require.NoError(t, err)

		in := []float32{1, 2, 3, 4}
		p.Project(in)
		assert.Equal(t, []float32{1, 2, 3, 4}, in)
	})

	t.Run("PanicsOnLengthMismatch", func(t *testing.T) {
		p, err := New(Config{InputDim: 4, OutputDim: 8, Seed: 1})
		require.NoError(t, err)

		assert.Panics(t, func() { p.Project([]float32{1, 2}) })
	})
}

func TestProjectPreservesAngles(t *testing.T) {
	const (
		inputDim  = 64
		outputDim = 10000
	)

	p, err := New(Config{InputDim: inputDim, OutputDim: outputDim, Seed: 42})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1)) //nolint gosec

	a := make([]float32, inputDim)
	c := make([]float32, inputDim)
	for i := range a {
		a[i] = float32(rng.NormFloat64())
		c[i] = float32(rng.NormFloat64())
	}

	// b leans on a, so the pair has a substantial known angle.
	b := make([]float32, inputDim)
	for i := range b {
		b[i] = 0.8*a[i] + 0.6*c[i]
	}

	cosIn := cosine(a, b)
	cosOut := cosine(p.Project(a), p.Project(b))
	assert.InDelta(t, cosIn, cosOut, 0.1)
}

func TestProjectExpandsNormPredictably(t *testing.T) {
	const (
		inputDim  = 64
		outputDim = 10000
	)

	p, err := New(Config{InputDim: inputDim, OutputDim: outputDim, Seed: 42})
	require.NoError(t, err)

	in := make([]float32, inputDim)
	for i := range in {
		in[i] = 1
	}

	out := p.Project(in)

	var normIn, normOut float64
	for _, x := range in {
		normIn += float64(x) * float64(x)
	}
	for _, x := range out {
		normOut += float64(x) * float64(x)
	}

	// Row variance 1/inputDim makes the expected squared-norm gain
	// outputDim/inputDim.
	gain := normOut / normIn
	want := float64(outputDim) / float64(inputDim)
	assert.InEpsilon(t, want, gain, 0.2)
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}

	return dot / math.Sqrt(na*nb)
}

func BenchmarkProject(b *testing.B) {
	p, err := New(Config{InputDim: 768, OutputDim: 10000, Seed: 42})
	if err != nil {
		b.Fatal(err)
	}

	in := make([]float32, 768)
	for i := range in {
		in[i] = float32(i%7) - 3
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Project(in)
	}
}
