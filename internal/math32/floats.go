// Package math32 provides float32 and int8 vector kernels.
// This is an internal package - external users should use the similarity package.
package math32

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredNorm calculates the squared L2 norm of a vector.
func SquaredNorm(a []float32) float32 {
	var ret float32
	for _, v := range a {
		ret += v * v
	}

	return ret
}
