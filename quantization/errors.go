package quantization

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a dimension is not positive.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrInvalidSparsity is returned when sparsity lies outside (0, 1).
	ErrInvalidSparsity = errors.New("sparsity must be in (0, 1)")

	// ErrReservedCode is the cause reported when a packed buffer contains
	// the reserved 2-bit code 0b11.
	ErrReservedCode = errors.New("reserved code 0b11")

	// ErrBufferTooShort is the cause reported when a packed buffer holds
	// fewer bytes than the dimension requires.
	ErrBufferTooShort = errors.New("buffer too short")
)

// FormatError reports a malformed packed buffer. It is never recovered
// silently: a partially decoded vector would corrupt downstream similarity
// comparisons.
type FormatError struct {
	// Offset is the byte position at which decoding failed.
	Offset int

	err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed packed vector at byte %d: %v", e.Offset, e.err)
}

func (e *FormatError) Unwrap() error {
	return e.err
}
