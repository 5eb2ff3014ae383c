package hypervector

import (
	"math/bits"

	"golang.org/x/exp/rand"
)

// Binary is an immutable bitpacked binary hypervector.
// Padding bits in the final word are always zero.
type Binary struct {
	dims  int
	words []uint64
}

// NewBinary returns a zero-valued Binary of the given dimension.
func NewBinary(dims int) Binary {
	if dims <= 0 {
		panic("hypervector: dims must be positive")
	}
	return Binary{dims: dims, words: make([]uint64, numWords(dims))}
}

// FromWords constructs a Binary from a raw word slice.
// len(words) must equal ceil(dims/64). The slice is copied and padding
// bits are zeroed automatically.
func FromWords(dims int, words []uint64) Binary {
	if dims <= 0 {
		panic("hypervector: dims must be positive")
	}
	needed := numWords(dims)
	if len(words) != needed {
		panic("hypervector: words length does not match dims")
	}
	copied := make([]uint64, needed)
	copy(copied, words)
	zeroPadding(copied, dims)
	return Binary{dims: dims, words: copied}
}

// Random returns a Binary whose bits are drawn from a PCG stream keyed by
// seed. The same (dims, seed) pair always yields the same vector, within
// and across processes.
func Random(dims int, seed uint64) Binary {
	v := NewBinary(dims)
	rng := rand.New(rand.NewSource(seed))
	for i := range v.words {
		v.words[i] = rng.Uint64()
	}
	zeroPadding(v.words, dims)
	return v
}

// Dims returns the dimension of the vector.
func (v Binary) Dims() int { return v.dims }

// Clone returns an independent copy of v.
func (v Binary) Clone() Binary {
	words := make([]uint64, len(v.words))
	copy(words, v.words)
	return Binary{dims: v.dims, words: words}
}

// Bit reports whether bit i is set. Panics if i is out of range.
func (v Binary) Bit(i int) bool {
	if i < 0 || i >= v.dims {
		panic("hypervector: bit index out of range")
	}
	return v.words[i/64]>>(uint(i)%64)&1 == 1
}

// OnesCount returns the number of set bits.
func (v Binary) OnesCount() int {
	var n int
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsZero reports whether no bit is set. The all-zero vector is the
// sentinel produced by encoding empty text.
func (v Binary) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether v and other have identical dimension and bits.
func (v Binary) Equal(other Binary) bool {
	if v.dims != other.dims {
		return false
	}
	for i := range v.words {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Permute performs a cyclic shift of the bit array by one position:
// result[i] = v[(i+1) % dims].
// Applying Permute dims times returns the original vector.
func (v Binary) Permute() Binary {
	result := v.Clone()
	w := len(result.words)

	bit0 := result.words[0] & 1
	for i := 0; i < w-1; i++ {
		result.words[i] = (result.words[i] >> 1) | ((result.words[i+1] & 1) << 63)
	}
	highBit := uint((v.dims - 1) % 64)
	result.words[w-1] = (result.words[w-1] >> 1) | (bit0 << highBit)

	return result
}

// PermuteBy performs a cyclic shift of the bit array by k positions.
// PermuteBy(0) returns a copy of v. Panics if k is negative.
func (v Binary) PermuteBy(k int) Binary {
	if k < 0 {
		panic("hypervector: shift must be non-negative")
	}
	k %= v.dims
	result := v.Clone()
	for i := 0; i < k; i++ {
		result = result.Permute()
	}
	return result
}

// Bind associates two vectors via XOR. The operation is its own inverse:
// Bind(Bind(a, b), b) == a.
func Bind(a, b Binary) Binary {
	requireSameDims(a, b)
	result := NewBinary(a.dims)
	for i := range result.words {
		result.words[i] = a.words[i] ^ b.words[i]
	}
	return result
}

// Bundle returns the majority-vote superposition of the given vectors:
// output bit i is set iff strictly more than half of the inputs have bit i
// set. With an even count, ties resolve to 0. Bundling a single vector is
// the identity. All vectors must have the same dimension.
func Bundle(vecs ...Binary) Binary {
	if len(vecs) == 0 {
		panic("hypervector: Bundle requires at least one vector")
	}
	requireSameDims(vecs...)

	dims := vecs[0].dims
	threshold := int32(len(vecs) / 2)

	counts := make([]int32, dims)
	for _, v := range vecs {
		for w, word := range v.words {
			base := w * 64
			for word != 0 {
				b := bits.TrailingZeros64(word)
				counts[base+b]++
				word &^= 1 << uint(b)
			}
		}
	}

	result := NewBinary(dims)
	for i, c := range counts {
		if c > threshold {
			result.words[i/64] |= 1 << uint(i%64)
		}
	}
	return result
}

// Hamming returns the number of bit positions at which a and b differ.
func Hamming(a, b Binary) int {
	requireSameDims(a, b)
	var diff int
	for i := range a.words {
		diff += bits.OnesCount64(a.words[i] ^ b.words[i])
	}
	return diff
}

func numWords(dims int) int {
	return (dims + 63) / 64
}

func zeroPadding(words []uint64, dims int) {
	if rem := dims % 64; rem != 0 {
		words[len(words)-1] &= (uint64(1) << uint(rem)) - 1
	}
}

func requireSameDims(vecs ...Binary) {
	d := vecs[0].dims
	for _, v := range vecs[1:] {
		if v.dims != d {
			panic("hypervector: dimension mismatch")
		}
	}
}
