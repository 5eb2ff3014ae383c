package spatter

import (
	"sync"

	farmhash "github.com/leemcloughlin/gofarmhash"

	"github.com/hupe1980/hdcgo/hypervector"
)

const (
	// PadToken right-pads trailing windows that run past the last token.
	// Tokenization lowercases input, so the upper-case name can never
	// collide with a real token.
	PadToken = "<PAD>"

	// positionToken seeds the base vector that positional codes are
	// derived from by cyclic shifting.
	positionToken = "<POSITION>"
)

// symbolTable is a thread-safe lazy map from token to its deterministic
// basis vector.
type symbolTable struct {
	mu    sync.RWMutex
	dims  int
	seed  uint64
	table map[string]hypervector.Binary
}

func newSymbolTable(dims int, seed uint64) *symbolTable {
	return &symbolTable{
		dims:  dims,
		seed:  seed,
		table: make(map[string]hypervector.Binary),
	}
}

// get returns the basis vector for symbol, generating and caching it on
// first use. Racing callers may generate the same vector twice; both derive
// the identical bits from the seed, so only the map insert is serialized.
func (t *symbolTable) get(symbol string) hypervector.Binary {
	t.mu.RLock()
	v, ok := t.table[symbol]
	t.mu.RUnlock()
	if ok {
		return v
	}

	v = t.generate(symbol)

	t.mu.Lock()
	defer t.mu.Unlock()
	if cached, ok := t.table[symbol]; ok {
		return cached
	}
	t.table[symbol] = v
	return v
}

// generate derives the per-symbol bit stream seed by hashing the symbol
// bytes with the table seed. FarmHash folds the seed into the hash itself,
// so there is no shared generator state to serialize.
func (t *symbolTable) generate(symbol string) hypervector.Binary {
	return hypervector.Random(t.dims, farmhash.Hash64WithSeed([]byte(symbol), t.seed))
}

func (t *symbolTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}
