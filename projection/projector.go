package projection

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/hdcgo/internal/math32"
)

// ErrInvalidDimension is returned when a configured dimension is not positive.
var ErrInvalidDimension = errors.New("dimension must be positive")

// Config holds the construction parameters of a Projector.
type Config struct {
	// InputDim is the length of the dense embeddings to project.
	InputDim int
	// OutputDim is the hyperdimensional target length.
	OutputDim int
	// Seed determines the projection matrix. Equal seeds and dimensions
	// produce bit-identical projectors.
	Seed uint64
}

// Projector applies a fixed random linear map from InputDim to OutputDim.
// It is immutable after construction and safe for concurrent use.
type Projector struct {
	cfg Config

	// rows[j] holds the input-side coefficients of output element j.
	rows [][]float32
}

// New creates a Projector with a Gaussian matrix drawn from cfg.Seed.
func New(cfg Config) (*Projector, error) {
	if cfg.InputDim <= 0 {
		return nil, fmt.Errorf("input dimension %d: %w", cfg.InputDim, ErrInvalidDimension)
	}

	if cfg.OutputDim <= 0 {
		return nil, fmt.Errorf("output dimension %d: %w", cfg.OutputDim, ErrInvalidDimension)
	}

	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1 / math.Sqrt(float64(cfg.InputDim)),
		Src:   rand.NewSource(cfg.Seed),
	}

	rows := make([][]float32, cfg.OutputDim)
	for j := range rows {
		row := make([]float32, cfg.InputDim)
		for i := range row {
			row[i] = float32(dist.Rand())
		}

		rows[j] = row
	}

	return &Projector{cfg: cfg, rows: rows}, nil
}

// InputDim returns the expected embedding length.
func (p *Projector) InputDim() int {
	return p.cfg.InputDim
}

// OutputDim returns the projected length.
func (p *Projector) OutputDim() int {
	return p.cfg.OutputDim
}

// Project maps a dense embedding into the hyperdimensional space.
// The input is not mutated. Panics if len(embedding) differs from InputDim.
func (p *Projector) Project(embedding []float32) []float32 {
	if len(embedding) != p.cfg.InputDim {
		panic(fmt.Sprintf("projection: embedding length %d, want %d", len(embedding), p.cfg.InputDim))
	}

	out := make([]float32, p.cfg.OutputDim)
	for j, row := range p.rows {
		out[j] = math32.Dot(embedding, row)
	}

	return out
}
