package math32

// DotInt8 calculates the dot product of two int8 vectors using int32
// accumulation. Assumes vectors are the same length (caller's responsibility).
// Safe for ternary {-1,0,+1} inputs up to 2^31-1 dimensions.
func DotInt8(a, b []int8) int32 {
	var ret int32
	for i := range a {
		ret += int32(a[i]) * int32(b[i])
	}

	return ret
}

// SquaredNormInt8 calculates the squared L2 norm of an int8 vector.
// For ternary vectors this equals the count of non-zero elements.
func SquaredNormInt8(a []int8) int32 {
	var ret int32
	for _, v := range a {
		ret += int32(v) * int32(v)
	}

	return ret
}
