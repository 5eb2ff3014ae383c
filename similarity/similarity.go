package similarity

import (
	"fmt"
	"math"

	"github.com/hupe1980/hdcgo/hypervector"
	"github.com/hupe1980/hdcgo/internal/math32"
)

// Cosine calculates the cosine similarity of two float32 vectors, shifted
// from [-1, 1] into [0, 1]: 1 parallel, 0.5 orthogonal, 0 antiparallel.
// Assumes vectors are the same length (caller's responsibility).
// Returns 0 if either vector has zero norm.
func Cosine(a, b []float32) float64 {
	na := math32.SquaredNorm(a)
	nb := math32.SquaredNorm(b)
	if na == 0 || nb == 0 {
		return 0
	}

	cos := float64(math32.Dot(a, b)) / math.Sqrt(float64(na)*float64(nb))

	return (cos + 1) / 2
}

// CosineTernary calculates the cosine similarity of two ternary vectors,
// shifted from [-1, 1] into [0, 1] like Cosine.
// Assumes vectors are the same length (caller's responsibility).
// Returns 0 if either vector is all zeros.
func CosineTernary(a, b []int8) float64 {
	na := math32.SquaredNormInt8(a)
	nb := math32.SquaredNormInt8(b)
	if na == 0 || nb == 0 {
		return 0
	}

	cos := float64(math32.DotInt8(a, b)) / math.Sqrt(float64(na)*float64(nb))

	return (cos + 1) / 2
}

// Hamming calculates the fraction of agreeing bit positions between two
// binary hypervectors: 1 minus the normalized Hamming distance. Identical
// vectors score 1, complements 0, unrelated random vectors about 0.5.
// Panics if the vectors have different dimensions.
func Hamming(a, b hypervector.Binary) float64 {
	return 1 - float64(hypervector.Hamming(a, b))/float64(a.Dims())
}

// Metric represents the similarity metric used for vector comparison.
type Metric int

const (
	MetricCosine Metric = iota
	MetricHamming
)

func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "Cosine"
	case MetricHamming:
		return "Hamming"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// TernaryFunc is a function type for similarity calculation on ternary vectors.
type TernaryFunc func(a, b []int8) float64

// Provider returns the similarity function for the given metric on ternary vectors.
func Provider(m Metric) (TernaryFunc, error) {
	switch m {
	case MetricCosine:
		return CosineTernary, nil
	default:
		return nil, fmt.Errorf("unsupported metric for ternary: %v", m)
	}
}
