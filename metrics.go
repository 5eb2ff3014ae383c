package hdcgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// observability package ships a ready-made Prometheus implementation.
//
// Example integration:
//
//	type StatsdCollector struct {
//	    client *statsd.Client
//	}
//
//	func (s *StatsdCollector) RecordEncode(duration time.Duration, err error) {
//	    s.client.Timing("hdcgo.encode", duration)
//	    // ... record error state, etc.
//	}
type MetricsCollector interface {
	// RecordEncode is called after each text encode operation.
	// duration is the total time taken, err is nil if successful.
	RecordEncode(duration time.Duration, err error)

	// RecordEncodeEmbedding is called after each embedding encode
	// (project + ternarize) operation.
	RecordEncodeEmbedding(duration time.Duration, err error)

	// RecordBatchEncode is called after each batch encode operation.
	// count is the number of items attempted, failed is the number that failed,
	// duration is the total time taken.
	RecordBatchEncode(count, failed int, duration time.Duration)

	// RecordSearch is called after each similarity search.
	// k is the number of neighbors requested, duration is the time taken,
	// err is nil if successful.
	RecordSearch(k int, duration time.Duration, err error)

	// RecordUnpack is called after each packed-vector decode.
	RecordUnpack(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(time.Duration, error)          {}
func (NoopMetricsCollector) RecordEncodeEmbedding(time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchEncode(int, int, time.Duration)  {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordUnpack(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EncodeCount               atomic.Int64
	EncodeErrors              atomic.Int64
	EncodeTotalNanos          atomic.Int64
	EncodeEmbeddingCount      atomic.Int64
	EncodeEmbeddingErrors     atomic.Int64
	EncodeEmbeddingTotalNanos atomic.Int64
	BatchEncodeCount          atomic.Int64
	BatchEncodeItems          atomic.Int64
	BatchEncodeFailed         atomic.Int64
	SearchCount               atomic.Int64
	SearchErrors              atomic.Int64
	SearchTotalNanos          atomic.Int64
	UnpackCount               atomic.Int64
	UnpackErrors              atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
	}
}

// RecordEncodeEmbedding implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncodeEmbedding(duration time.Duration, err error) {
	b.EncodeEmbeddingCount.Add(1)
	b.EncodeEmbeddingTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeEmbeddingErrors.Add(1)
	}
}

// RecordBatchEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchEncode(count, failed int, duration time.Duration) {
	b.BatchEncodeCount.Add(1)
	b.BatchEncodeItems.Add(int64(count))
	b.BatchEncodeFailed.Add(int64(failed))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordUnpack implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnpack(duration time.Duration, err error) {
	b.UnpackCount.Add(1)
	if err != nil {
		b.UnpackErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:           b.EncodeCount.Load(),
		EncodeErrors:          b.EncodeErrors.Load(),
		EncodeAvgNanos:        b.getAvgEncodeNanos(),
		EncodeEmbeddingCount:  b.EncodeEmbeddingCount.Load(),
		EncodeEmbeddingErrors: b.EncodeEmbeddingErrors.Load(),
		BatchEncodeCount:      b.BatchEncodeCount.Load(),
		BatchEncodeItems:      b.BatchEncodeItems.Load(),
		BatchEncodeFailed:     b.BatchEncodeFailed.Load(),
		SearchCount:           b.SearchCount.Load(),
		SearchErrors:          b.SearchErrors.Load(),
		SearchAvgNanos:        b.getAvgSearchNanos(),
		UnpackCount:           b.UnpackCount.Load(),
		UnpackErrors:          b.UnpackErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgEncodeNanos() int64 {
	count := b.EncodeCount.Load()
	if count == 0 {
		return 0
	}
	return b.EncodeTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount           int64
	EncodeErrors          int64
	EncodeAvgNanos        int64
	EncodeEmbeddingCount  int64
	EncodeEmbeddingErrors int64
	BatchEncodeCount      int64
	BatchEncodeItems      int64
	BatchEncodeFailed     int64
	SearchCount           int64
	SearchErrors          int64
	SearchAvgNanos        int64
	UnpackCount           int64
	UnpackErrors          int64
}
