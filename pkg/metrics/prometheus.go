// Package metrics provides Prometheus metrics for the smashlog service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Ingest metrics
	matchesLogged      prometheus.Counter
	validationFailures *prometheus.CounterVec

	// Aggregation metrics
	aggregationDuration *prometheus.HistogramVec
	corruptRecords      prometheus.Counter
	sessionsSegmented   prometheus.Gauge
	recordsTotal        prometheus.Gauge

	// Store metrics
	storeAppendLatency prometheus.Histogram
	storeReadLatency   prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global manager on a custom registry, so default Go collectors stay out of
// the scrape unless explicitly registered.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "smashlog",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	m.matchesLogged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "matches_logged_total",
		Help:      "Total number of matches accepted and appended to the store",
	})

	m.validationFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of match submissions rejected by the normalizer",
	}, []string{"field"})

	m.aggregationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Time spent computing a derived statistic over a snapshot",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.corruptRecords = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "corrupt_records_skipped_total",
		Help:      "Stored records excluded from aggregation because they failed to parse",
	})

	m.sessionsSegmented = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "sessions_total",
		Help:      "Number of sessions produced by the most recent segmentation",
	})

	m.recordsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "match_records_total",
		Help:      "Number of match records in the store",
	})

	m.storeAppendLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "store_append_latency_seconds",
		Help:      "Latency of record store appends",
		Buckets:   m.histogramBuckets,
	})

	m.storeReadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "store_read_latency_seconds",
		Help:      "Latency of full record store reads (snapshots)",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint and status code",
	}, []string{"endpoint", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by endpoint",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})
}

// Handler returns the scrape handler for the manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Get returns the global metrics manager.
func Get() *Manager { return globalManager }

// Package-level recording helpers delegate to the global manager.

func RecordMatchLogged() { globalManager.matchesLogged.Inc() }

func RecordValidationFailure(field string) {
	globalManager.validationFailures.WithLabelValues(field).Inc()
}

func RecordCorruptRecord() { globalManager.corruptRecords.Inc() }

func ObserveAggregation(operation string, d time.Duration) {
	globalManager.aggregationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func SetSessionCount(n int) { globalManager.sessionsSegmented.Set(float64(n)) }

func SetRecordCount(n int) { globalManager.recordsTotal.Set(float64(n)) }

func ObserveStoreAppend(d time.Duration) {
	globalManager.storeAppendLatency.Observe(d.Seconds())
}

func ObserveStoreRead(d time.Duration) {
	globalManager.storeReadLatency.Observe(d.Seconds())
}

func RecordHTTPRequest(endpoint, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, status).Inc()
}

func ObserveHTTPRequest(endpoint string, d time.Duration) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}
