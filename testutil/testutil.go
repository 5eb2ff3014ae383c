package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// GaussianVector generates one vector with values from a standard normal
// distribution, the shape of a typical dense embedding.
func (r *RNG) GaussianVector(dimensions int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float32, dimensions)
	for j := range vec {
		vec[j] = float32(r.rand.NormFloat64())
	}
	return vec
}

// GaussianVectors generates random vectors with values from a standard normal distribution.
// Uses a single backing array for efficiency.
func (r *RNG) GaussianVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = float32(r.rand.NormFloat64())
		}
		vectors[i] = vec
	}

	return vectors
}

// TernaryVector generates a random {-1, 0, +1} vector where each element
// is zero with probability sparsity and otherwise an even coin flip.
// The realized zero fraction is binomial around sparsity, not exact.
func (r *RNG) TernaryVector(dimensions int, sparsity float64) []int8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]int8, dimensions)
	for j := range vec {
		if r.rand.Float64() < sparsity {
			continue
		}
		if r.rand.Intn(2) == 0 {
			vec[j] = 1
		} else {
			vec[j] = -1
		}
	}
	return vec
}

// TernaryVectors generates num random ternary vectors.
func (r *RNG) TernaryVectors(num, dimensions int, sparsity float64) [][]int8 {
	vectors := make([][]int8, num)
	for i := range vectors {
		vectors[i] = r.TernaryVector(dimensions, sparsity)
	}
	return vectors
}
