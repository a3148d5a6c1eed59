package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/disksort/pkg/errors"
)

// metricsNamespace prefixes every metric name.
const metricsNamespace = "disksort"

// PrometheusHooks implements SortHooks, CacheHooks, and HTTPHooks with
// Prometheus collectors.
type PrometheusHooks struct {
	// SortsTotal counts sorts by algorithm and outcome.
	// Labels: algorithm, status (success, error code)
	SortsTotal *prometheus.CounterVec

	// SwapsTotal counts swaps performed by algorithm.
	SwapsTotal *prometheus.CounterVec

	// SortDurationSeconds measures sort latency by algorithm.
	SortDurationSeconds *prometheus.HistogramVec

	// RowDisks observes the size of rows handed to each algorithm.
	RowDisks *prometheus.HistogramVec

	// CacheEventsTotal counts cache lookups and writes.
	// Labels: key_type (result, artifact), event (hit, miss, set)
	CacheEventsTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts served requests.
	// Labels: method, route, code
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPDurationSeconds measures request latency.
	HTTPDurationSeconds *prometheus.HistogramVec
}

// NewPrometheusHooks creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		SortsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sort",
			Name:      "runs_total",
			Help:      "Total sorts by algorithm and status",
		}, []string{"algorithm", "status"}),
		SwapsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sort",
			Name:      "swaps_total",
			Help:      "Total adjacent swaps performed by algorithm",
		}, []string{"algorithm"}),
		SortDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "sort",
			Name:      "duration_seconds",
			Help:      "Sort duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"algorithm"}),
		RowDisks: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "sort",
			Name:      "row_disks",
			Help:      "Number of disks in sorted rows",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 13),
		}, []string{"algorithm"}),
		CacheEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Cache hits, misses, and writes by key type",
		}, []string{"key_type", "event"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route, and status code",
		}, []string{"method", "route", "code"}),
		HTTPDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		h.SortsTotal,
		h.SwapsTotal,
		h.SortDurationSeconds,
		h.RowDisks,
		h.CacheEventsTotal,
		h.HTTPRequestsTotal,
		h.HTTPDurationSeconds,
	)
	return h
}

// OnSortStart implements SortHooks.
func (h *PrometheusHooks) OnSortStart(_ context.Context, algorithm string, totalDisks int) {
	h.RowDisks.WithLabelValues(algorithm).Observe(float64(totalDisks))
}

// OnSortComplete implements SortHooks.
func (h *PrometheusHooks) OnSortComplete(_ context.Context, algorithm string, swaps int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = string(errors.GetCode(err))
		if status == "" {
			status = "error"
		}
	}
	h.SortsTotal.WithLabelValues(algorithm, status).Inc()
	h.SwapsTotal.WithLabelValues(algorithm).Add(float64(swaps))
	h.SortDurationSeconds.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// OnCacheHit implements CacheHooks.
func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.CacheEventsTotal.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements CacheHooks.
func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.CacheEventsTotal.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements CacheHooks.
func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.CacheEventsTotal.WithLabelValues(keyType, "set").Inc()
}

// OnRequest implements HTTPHooks.
func (h *PrometheusHooks) OnRequest(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	h.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	h.HTTPDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

var (
	_ SortHooks  = (*PrometheusHooks)(nil)
	_ CacheHooks = (*PrometheusHooks)(nil)
	_ HTTPHooks  = (*PrometheusHooks)(nil)
)
