package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/hdcgo"
)

// Compile time check to ensure PrometheusCollector satisfies the interface.
var _ hdcgo.MetricsCollector = (*PrometheusCollector)(nil)

// Option configures a PrometheusCollector.
type Option func(*options)

type options struct {
	namespace  string
	registerer prometheus.Registerer
}

// WithNamespace sets the metric name prefix. Defaults to "hdcgo".
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}

// WithRegisterer sets the registry the metrics are registered with.
// Defaults to prometheus.DefaultRegisterer.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

// PrometheusCollector implements hdcgo.MetricsCollector on top of
// Prometheus counters and histograms. All methods are safe for concurrent
// use.
type PrometheusCollector struct {
	opLatency  *prometheus.HistogramVec
	opErrors   *prometheus.CounterVec
	batchTotal prometheus.Counter
	batchItems *prometheus.CounterVec
	searchK    prometheus.Histogram
}

// NewPrometheusCollector creates and registers the collector's metrics.
// Registration fails if a collector with the same namespace is already
// registered; use WithRegisterer to isolate registries.
func NewPrometheusCollector(optFns ...Option) (*PrometheusCollector, error) {
	o := options{
		namespace:  "hdcgo",
		registerer: prometheus.DefaultRegisterer,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &PrometheusCollector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of encoder operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		opErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "operation_errors_total",
			Help:      "Total failed encoder operations",
		}, []string{"op"}),
		batchTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "batch_encodes_total",
			Help:      "Total batch encode operations",
		}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "batch_items_total",
			Help:      "Total items processed by batch encodes",
		}, []string{"status"}),
		searchK: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "search_k",
			Help:      "Requested neighbor count per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
	}

	for _, col := range []prometheus.Collector{
		c.opLatency, c.opErrors, c.batchTotal, c.batchItems, c.searchK,
	} {
		if err := o.registerer.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *PrometheusCollector) observe(op string, duration time.Duration, err error) {
	c.opLatency.WithLabelValues(op).Observe(duration.Seconds())
	if err != nil {
		c.opErrors.WithLabelValues(op).Inc()
	}
}

// RecordEncode implements hdcgo.MetricsCollector.
func (c *PrometheusCollector) RecordEncode(duration time.Duration, err error) {
	c.observe("encode", duration, err)
}

// RecordEncodeEmbedding implements hdcgo.MetricsCollector.
func (c *PrometheusCollector) RecordEncodeEmbedding(duration time.Duration, err error) {
	c.observe("encode_embedding", duration, err)
}

// RecordBatchEncode implements hdcgo.MetricsCollector.
func (c *PrometheusCollector) RecordBatchEncode(count, failed int, duration time.Duration) {
	c.batchTotal.Inc()
	c.batchItems.WithLabelValues("success").Add(float64(count - failed))
	c.batchItems.WithLabelValues("failed").Add(float64(failed))
	c.opLatency.WithLabelValues("batch_encode").Observe(duration.Seconds())
}

// RecordSearch implements hdcgo.MetricsCollector.
func (c *PrometheusCollector) RecordSearch(k int, duration time.Duration, err error) {
	c.searchK.Observe(float64(k))
	c.observe("search", duration, err)
}

// RecordUnpack implements hdcgo.MetricsCollector.
func (c *PrometheusCollector) RecordUnpack(duration time.Duration, err error) {
	c.observe("unpack", duration, err)
}
