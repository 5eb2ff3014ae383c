// Package observability provides a Prometheus-backed implementation of the
// hdcgo MetricsCollector interface.
//
// Pass the collector to an encoder via hdcgo.WithMetricsCollector and serve
// the registry with promhttp:
//
//	collector, _ := observability.NewPrometheusCollector()
//	enc, _ := hdcgo.NewBinarySpatterEncoder(10000, 3, 42, hdcgo.WithMetricsCollector(collector))
//	http.Handle("/metrics", promhttp.Handler())
package observability
