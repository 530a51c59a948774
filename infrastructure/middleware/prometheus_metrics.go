// Package middleware provides cross-cutting concerns for the
// compatibility engine.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It tracks check outcomes, score distribution, result-cache
// effectiveness, and operation latency for the compatibility engine.
type PrometheusMetrics struct {
	checksTotal      *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	scoreHistogram   prometheus.Histogram
	operationLatency *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all metrics in the global Prometheus registry. Call it once per
// process; duplicate registration panics.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		checksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compatibility_checks_total",
				Help: "Total number of compatibility checks evaluated, by outcome.",
			},
			[]string{"outcome"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compatibility_cache_lookups_total",
				Help: "Result-cache lookups, by hit or miss.",
			},
			[]string{"result"},
		),
		scoreHistogram: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "compatibility_score",
				Help:    "Distribution of computed compatibility scores.",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		operationLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "compatibility_operation_duration_seconds",
				Help:    "Wall-clock duration of engine operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordCheck implements the MetricsCollector interface by counting the
// check outcome and observing the score.
func (pm *PrometheusMetrics) RecordCheck(outcome string, score int) {
	pm.checksTotal.WithLabelValues(outcome).Inc()
	pm.scoreHistogram.Observe(float64(score))
}

// RecordCacheHit implements the MetricsCollector interface by counting
// cache hits and misses.
func (pm *PrometheusMetrics) RecordCacheHit(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	pm.cacheLookups.WithLabelValues(result).Inc()
}

// RecordLatency implements the MetricsCollector interface by observing
// operation duration in seconds.
func (pm *PrometheusMetrics) RecordLatency(operation string, duration time.Duration) {
	pm.operationLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
