package hdcgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hdcgo/projection"
	"github.com/hupe1980/hdcgo/quantization"
	"github.com/hupe1980/hdcgo/spatter"
)

var (
	// ErrInvalidConfiguration is returned when an encoder is constructed
	// with out-of-range parameters. The offending parameter is named by
	// the wrapped subpackage error.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ErrDimensionMismatch indicates a vector/embedding dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// translateError normalizes subpackage construction errors into the root
// taxonomy so callers only need to match against hdcgo sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, spatter.ErrInvalidDimension) ||
		errors.Is(err, spatter.ErrInvalidNGramSize) ||
		errors.Is(err, projection.ErrInvalidDimension) ||
		errors.Is(err, quantization.ErrInvalidDimension) ||
		errors.Is(err, quantization.ErrInvalidSparsity) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return err
}
