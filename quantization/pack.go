package quantization

const (
	codeZero  = 0b00
	codePlus  = 0b01
	codeMinus = 0b10
	// 0b11 is reserved and never emitted by Pack.
	codeReserved = 0b11
)

// PackedSize returns the packed byte length of a ternary vector with the
// given dimension: four elements per byte, rounded up.
func PackedSize(dimension int) int {
	return (dimension + 3) / 4
}

// Pack serializes a ternary vector at 2 bits per element.
//
// Storage format: element i occupies bits 7-6 of byte i/4 for i%4 == 0,
// descending to bits 1-0 (MSB first). 0 maps to 0b00, +1 to 0b01, -1 to
// 0b10. Values outside {-1, 0, +1} map to 0b00. If the dimension is not a
// multiple of four, the unused low bits of the final byte are zero.
func Pack(v []int8) []byte {
	out := make([]byte, PackedSize(len(v)))
	for i, x := range v {
		var code byte
		switch x {
		case 1:
			code = codePlus
		case -1:
			code = codeMinus
		default:
			code = codeZero
		}

		out[i/4] |= code << uint(6-2*(i%4))
	}

	return out
}

// Unpack deserializes a ternary vector of the given dimension from a packed
// buffer, reversing Pack bit for bit.
//
// It returns a FormatError wrapping ErrBufferTooShort if the buffer holds
// fewer than PackedSize(dimension) bytes, and one wrapping ErrReservedCode
// if any of the first dimension elements carries the code 0b11. Trailing
// surplus bytes and the padding bits of the final byte are ignored.
func Unpack(data []byte, dimension int) ([]int8, error) {
	if dimension <= 0 {
		return nil, ErrInvalidDimension
	}

	if len(data) < PackedSize(dimension) {
		return nil, &FormatError{Offset: len(data), err: ErrBufferTooShort}
	}

	out := make([]int8, dimension)
	for i := 0; i < dimension; i++ {
		code := (data[i/4] >> uint(6-2*(i%4))) & 0b11
		switch code {
		case codePlus:
			out[i] = 1
		case codeMinus:
			out[i] = -1
		case codeReserved:
			return nil, &FormatError{Offset: i / 4, err: ErrReservedCode}
		}
	}

	return out, nil
}
