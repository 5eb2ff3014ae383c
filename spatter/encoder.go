package spatter

import (
	"errors"
	"strings"

	"github.com/hupe1980/hdcgo/hypervector"
)

var (
	// ErrInvalidDimension is returned when the configured dimension is not positive.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrInvalidNGramSize is returned when the configured n-gram size is not positive.
	ErrInvalidNGramSize = errors.New("n-gram size must be positive")
)

// Config holds parameters for an Encoder.
type Config struct {
	Dimension int    // hypervector dimension (default 10000)
	NGramSize int    // sliding window width in tokens (default 3)
	Seed      uint64 // namespace seed; same seed, same symbol table
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{
		Dimension: 10000,
		NGramSize: 3,
	}
}

// Encoder converts text into a binary hypervector using positional n-gram
// binding and majority-vote bundling. It is safe for concurrent use.
type Encoder struct {
	cfg       Config
	symbols   *symbolTable
	pad       hypervector.Binary
	positions []hypervector.Binary
}

// New creates an Encoder with the given Config.
func New(cfg Config) (*Encoder, error) {
	if cfg.Dimension <= 0 {
		return nil, ErrInvalidDimension
	}
	if cfg.NGramSize <= 0 {
		return nil, ErrInvalidNGramSize
	}

	symbols := newSymbolTable(cfg.Dimension, cfg.Seed)

	// Positional code k is the base vector cyclically shifted by k, so
	// position 0 is the unshifted base.
	base := symbols.get(positionToken)
	positions := make([]hypervector.Binary, cfg.NGramSize)
	for k := range positions {
		positions[k] = base.PermuteBy(k)
	}

	return &Encoder{
		cfg:       cfg,
		symbols:   symbols,
		pad:       symbols.get(PadToken),
		positions: positions,
	}, nil
}

// Dimension returns the configured hypervector dimension.
func (e *Encoder) Dimension() int { return e.cfg.Dimension }

// NGramSize returns the configured window width.
func (e *Encoder) NGramSize() int { return e.cfg.NGramSize }

// Symbols returns the number of cached basis vectors.
func (e *Encoder) Symbols() int { return e.symbols.len() }

// SymbolVector returns the deterministic basis vector for symbol,
// generating and caching it on first use. Any string, including the empty
// string, is a valid symbol.
func (e *Encoder) SymbolVector(symbol string) hypervector.Binary {
	return e.symbols.get(symbol)
}

// Encode returns the hypervector for text. Empty or whitespace-only text
// yields the all-zero sentinel vector.
func (e *Encoder) Encode(text string) hypervector.Binary {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return hypervector.NewBinary(e.cfg.Dimension)
	}

	windows := make([]hypervector.Binary, len(tokens))
	for i := range tokens {
		windows[i] = e.bindWindow(tokens, i)
	}
	return hypervector.Bundle(windows...)
}

// bindWindow encodes the window starting at token index start:
// the XOR fold of (symbol XOR positional code) over the window, with
// offsets past the last token filled by the pad symbol.
func (e *Encoder) bindWindow(tokens []string, start int) hypervector.Binary {
	v := hypervector.Bind(e.windowSymbol(tokens, start, 0), e.positions[0])
	for k := 1; k < e.cfg.NGramSize; k++ {
		bound := hypervector.Bind(e.windowSymbol(tokens, start, k), e.positions[k])
		v = hypervector.Bind(v, bound)
	}
	return v
}

func (e *Encoder) windowSymbol(tokens []string, start, offset int) hypervector.Binary {
	if start+offset < len(tokens) {
		return e.symbols.get(tokens[start+offset])
	}
	return e.pad
}

// tokenize lowercases and splits on whitespace. No further normalization
// is applied.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
