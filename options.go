package hdcgo

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/hdcgo/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxConcurrency   int64
	opsPerSecond     float64
}

// Option configures encoder constructor behavior.
//
// Options exist to keep the constructors small: everything beyond the
// core encoding parameters (dimension, n-gram size, sparsity, seed) is
// optional and defaults to off.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hdcgo.BasicMetricsCollector{}
//	enc, _ := hdcgo.NewBinarySpatterEncoder(10000, 3, 42, hdcgo.WithMetricsCollector(metrics))
//	// ... use enc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Encodes: %d, Avg latency: %dns\n", stats.EncodeCount, stats.EncodeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hdcgo.NewJSONLogger(slog.LevelInfo)
//	enc, _ := hdcgo.NewBinarySpatterEncoder(10000, 3, 42, hdcgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxConcurrency caps the number of encodes running at once during
// batch operations. Zero or negative means one worker per CPU.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = int64(n)
	}
}

// WithRateLimit caps batch encoding throughput in operations per second.
// Zero or negative means unlimited.
func WithRateLimit(opsPerSecond float64) Option {
	return func(o *options) {
		o.opsPerSecond = opsPerSecond
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// controller builds the batch admission controller from the configured
// limits, or returns nil when nothing is limited.
func (o options) controller() *resource.Controller {
	if o.maxConcurrency <= 0 && o.opsPerSecond <= 0 {
		return nil
	}
	return resource.NewController(resource.Config{
		MaxConcurrent: o.maxConcurrency,
		OpsPerSecond:  o.opsPerSecond,
	})
}

// batchLimit is the errgroup worker cap for batch encoding.
func (o options) batchLimit() int {
	if o.maxConcurrency > 0 {
		return int(o.maxConcurrency)
	}
	return runtime.GOMAXPROCS(0)
}
