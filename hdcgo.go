package hdcgo

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hdcgo/hypervector"
	"github.com/hupe1980/hdcgo/projection"
	"github.com/hupe1980/hdcgo/quantization"
	"github.com/hupe1980/hdcgo/resource"
	"github.com/hupe1980/hdcgo/similarity"
	"github.com/hupe1980/hdcgo/spatter"
)

// Production defaults. The examples and tests use these unless they are
// exercising a specific parameter.
const (
	// DefaultDimension is the hypervector width.
	DefaultDimension = 10000
	// DefaultNGramSize is the token window width for text encoding.
	DefaultNGramSize = 3
	// DefaultSparsity is the target zero fraction for ternary quantization.
	DefaultSparsity = 0.7
	// DefaultInputDim matches the width of common sentence-embedding models.
	DefaultInputDim = 384
)

// BinarySpatterEncoder converts text into high-dimensional binary vectors
// using positional n-gram binding and majority-vote bundling.
//
// Encoding is deterministic for a given (dimension, ngramSize, seed)
// configuration: two encoders built with the same parameters produce
// bit-identical vectors for the same text, within and across processes.
// The encoder is safe for concurrent use.
type BinarySpatterEncoder struct {
	enc     *spatter.Encoder
	seed    uint64
	metrics MetricsCollector
	logger  *Logger
	ctrl    *resource.Controller
	limit   int
}

// NewBinarySpatterEncoder creates a text encoder.
//
// dimension is the hypervector width, ngramSize the sliding token window
// width. seed namespaces the symbol table: encoders with different seeds
// produce unrelated vector spaces.
func NewBinarySpatterEncoder(dimension, ngramSize int, seed uint64, optFns ...Option) (*BinarySpatterEncoder, error) {
	o := applyOptions(optFns)

	enc, err := spatter.New(spatter.Config{
		Dimension: dimension,
		NGramSize: ngramSize,
		Seed:      seed,
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &BinarySpatterEncoder{
		enc:     enc,
		seed:    seed,
		metrics: o.metricsCollector,
		logger:  o.logger,
		ctrl:    o.controller(),
		limit:   o.batchLimit(),
	}, nil
}

// Encode converts text into a binary hypervector. Tokenization lowercases
// and splits on whitespace. Empty or whitespace-only text yields the
// all-zero sentinel vector.
func (e *BinarySpatterEncoder) Encode(text string) hypervector.Binary {
	start := time.Now()
	v := e.enc.Encode(text)
	e.metrics.RecordEncode(time.Since(start), nil)
	e.logger.LogEncode(len(text), e.enc.Dimension())
	return v
}

// EncodeBatch encodes texts concurrently, preserving input order. Worker
// count is capped by WithMaxConcurrency (one per CPU when unset) and
// throughput by WithRateLimit. On error or context cancellation the batch
// stops early and the first error is returned.
func (e *BinarySpatterEncoder) EncodeBatch(ctx context.Context, texts []string) ([]hypervector.Binary, error) {
	start := time.Now()

	results := make([]hypervector.Binary, len(texts))
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.ctrl.Acquire(ctx); err != nil {
				return err
			}
			defer e.ctrl.Release()

			results[i] = e.enc.Encode(text)
			completed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	failed := len(texts) - int(completed.Load())
	e.metrics.RecordBatchEncode(len(texts), failed, time.Since(start))
	e.logger.LogBatchEncode(ctx, len(texts), failed)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Similarity reports the fraction of agreeing bit positions between two
// encodings, in [0,1]. Identical vectors score 1.0; unrelated encodings
// of the same dimension score near 0.5. Panics if the vectors differ in
// dimension.
func (e *BinarySpatterEncoder) Similarity(a, b hypervector.Binary) float64 {
	return similarity.Hamming(a, b)
}

// Dimension returns the hypervector width.
func (e *BinarySpatterEncoder) Dimension() int { return e.enc.Dimension() }

// NGramSize returns the token window width.
func (e *BinarySpatterEncoder) NGramSize() int { return e.enc.NGramSize() }

// Seed returns the configured namespace seed.
func (e *BinarySpatterEncoder) Seed() uint64 { return e.seed }

// Symbols returns the number of interned symbol vectors, including the
// two reserved ones. It grows as new tokens are encountered.
func (e *BinarySpatterEncoder) Symbols() int { return e.enc.Symbols() }

// TernaryEncoder converts dense float32 embeddings into sparse ternary
// vectors suitable for compact transmission: a seeded random projection
// expands the embedding to the hyperdimensional width, quantization maps
// elements to {-1, 0, +1}, and packing stores four elements per byte.
//
// Like the text encoder it is deterministic per configuration and safe
// for concurrent use.
type TernaryEncoder struct {
	projector *projection.Projector
	quantizer *quantization.TernaryQuantizer
	seed      uint64
	metrics   MetricsCollector
	logger    *Logger
	ctrl      *resource.Controller
	limit     int
}

// NewTernaryEncoder creates an embedding encoder.
//
// dimension is the hyperdimensional output width and inputDim the width
// of incoming embeddings. sparsity in (0,1) is the fraction of output
// elements forced to zero. seed fixes the projection matrix.
func NewTernaryEncoder(dimension int, sparsity float64, seed uint64, inputDim int, optFns ...Option) (*TernaryEncoder, error) {
	o := applyOptions(optFns)

	projector, err := projection.New(projection.Config{
		InputDim:  inputDim,
		OutputDim: dimension,
		Seed:      seed,
	})
	if err != nil {
		return nil, translateError(err)
	}

	quantizer, err := quantization.NewTernaryQuantizer(dimension, sparsity)
	if err != nil {
		return nil, translateError(err)
	}

	return &TernaryEncoder{
		projector: projector,
		quantizer: quantizer,
		seed:      seed,
		metrics:   o.metricsCollector,
		logger:    o.logger,
		ctrl:      o.controller(),
		limit:     o.batchLimit(),
	}, nil
}

// EncodeEmbedding projects an embedding to the hyperdimensional width and
// quantizes it to a ternary vector.
func (e *TernaryEncoder) EncodeEmbedding(embedding []float32) ([]int8, error) {
	start := time.Now()
	v, err := e.encodeEmbedding(embedding)
	e.metrics.RecordEncodeEmbedding(time.Since(start), err)
	e.logger.LogEncodeEmbedding(e.projector.InputDim(), e.projector.OutputDim(), err)
	return v, err
}

func (e *TernaryEncoder) encodeEmbedding(embedding []float32) ([]int8, error) {
	if len(embedding) != e.projector.InputDim() {
		return nil, &ErrDimensionMismatch{Expected: e.projector.InputDim(), Actual: len(embedding)}
	}
	return e.quantizer.Ternarize(e.projector.Project(embedding)), nil
}

// EncodeEmbeddingBatch encodes embeddings concurrently, preserving input
// order. Limits configured via WithMaxConcurrency and WithRateLimit apply.
// On error or context cancellation the batch stops early and the first
// error is returned.
func (e *TernaryEncoder) EncodeEmbeddingBatch(ctx context.Context, embeddings [][]float32) ([][]int8, error) {
	start := time.Now()

	results := make([][]int8, len(embeddings))
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i, embedding := range embeddings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.ctrl.Acquire(ctx); err != nil {
				return err
			}
			defer e.ctrl.Release()

			v, err := e.encodeEmbedding(embedding)
			if err != nil {
				return err
			}
			results[i] = v
			completed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	failed := len(embeddings) - int(completed.Load())
	e.metrics.RecordBatchEncode(len(embeddings), failed, time.Since(start))
	e.logger.LogBatchEncode(ctx, len(embeddings), failed)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Project applies the random projection without quantizing.
func (e *TernaryEncoder) Project(embedding []float32) ([]float32, error) {
	if len(embedding) != e.projector.InputDim() {
		return nil, &ErrDimensionMismatch{Expected: e.projector.InputDim(), Actual: len(embedding)}
	}
	return e.projector.Project(embedding), nil
}

// Ternarize quantizes an already-projected vector to {-1, 0, +1}.
func (e *TernaryEncoder) Ternarize(v []float32) ([]int8, error) {
	if len(v) != e.quantizer.Dimension() {
		return nil, &ErrDimensionMismatch{Expected: e.quantizer.Dimension(), Actual: len(v)}
	}
	return e.quantizer.Ternarize(v), nil
}

// Pack encodes a ternary vector at four elements per byte.
func (e *TernaryEncoder) Pack(v []int8) ([]byte, error) {
	if len(v) != e.quantizer.Dimension() {
		return nil, &ErrDimensionMismatch{Expected: e.quantizer.Dimension(), Actual: len(v)}
	}
	return quantization.Pack(v), nil
}

// Unpack decodes a packed buffer back into a ternary vector of the
// encoder's dimension. Malformed buffers yield a quantization.FormatError.
func (e *TernaryEncoder) Unpack(data []byte) ([]int8, error) {
	start := time.Now()
	v, err := quantization.Unpack(data, e.quantizer.Dimension())
	e.metrics.RecordUnpack(time.Since(start), err)
	e.logger.LogUnpack(e.quantizer.Dimension(), err)
	return v, err
}

// Similarity reports normalized cosine similarity between two ternary
// vectors, in [0,1]. Returns 0 when either vector has zero norm. Assumes
// vectors are the same length (caller's responsibility).
func (e *TernaryEncoder) Similarity(a, b []int8) float64 {
	return similarity.CosineTernary(a, b)
}

// Dimension returns the hyperdimensional output width.
func (e *TernaryEncoder) Dimension() int { return e.quantizer.Dimension() }

// InputDim returns the expected embedding width.
func (e *TernaryEncoder) InputDim() int { return e.projector.InputDim() }

// Sparsity returns the configured target zero fraction.
func (e *TernaryEncoder) Sparsity() float64 { return e.quantizer.Sparsity() }

// Seed returns the configured projection seed.
func (e *TernaryEncoder) Seed() uint64 { return e.seed }

// PackedSize returns the byte length of one packed vector.
func (e *TernaryEncoder) PackedSize() int {
	return quantization.PackedSize(e.quantizer.Dimension())
}

// VectorSizes describes the per-vector storage footprint of the common
// representations at a given dimension.
type VectorSizes struct {
	Dimension          int
	Float32Bytes       int
	Float16Bytes       int
	BinaryBytes        int
	PackedTernaryBytes int
	// CompressionRatio is Float32Bytes divided by PackedTernaryBytes.
	CompressionRatio float64
}

// VectorSizes reports the storage footprint of one encoded vector.
func (e *TernaryEncoder) VectorSizes() VectorSizes {
	d := e.quantizer.Dimension()
	packed := quantization.PackedSize(d)
	return VectorSizes{
		Dimension:          d,
		Float32Bytes:       4 * d,
		Float16Bytes:       2 * d,
		BinaryBytes:        (d + 7) / 8,
		PackedTernaryBytes: packed,
		CompressionRatio:   float64(4*d) / float64(packed),
	}
}
