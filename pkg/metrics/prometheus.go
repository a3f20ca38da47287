// Package metrics provides Prometheus metrics for the homerank scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the homerank service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scoring metrics
	listingsScored        prometheus.Counter
	factorComputeDuration prometheus.Histogram
	rescoreDuration       prometheus.Histogram

	// Snapshot metrics
	snapshotsPublished prometheus.Counter
	snapshotListings   prometheus.Gauge
	snapshotDropped    prometheus.Counter

	// Score cache metrics
	scoreCacheHits   prometheus.Counter
	scoreCacheMisses prometheus.Counter

	// Ranked store metrics
	storeRebuildDuration prometheus.Histogram
	storeEntries         prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "homerank",
		subsystem:        "scoring",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.listingsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "listings_scored_total",
		Help:      "Total number of listings run through factor scoring",
	})

	m.factorComputeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "factor_compute_duration_milliseconds",
		Help:      "Histogram of full factor-score computation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rescoreDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rescore_duration_milliseconds",
		Help:      "Histogram of weighted aggregation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.snapshotsPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshots_published_total",
		Help:      "Total number of dataset snapshots published",
	})

	m.snapshotListings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_listings",
		Help:      "Number of listings in the current dataset snapshot",
	})

	m.snapshotDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_records_dropped_total",
		Help:      "Total input records dropped during snapshot builds (duplicates or missing identity)",
	})

	m.scoreCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_cache_hits_total",
		Help:      "Total score cache hits",
	})

	m.scoreCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_cache_misses_total",
		Help:      "Total score cache misses",
	})

	m.storeRebuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_rebuild_duration_milliseconds",
		Help:      "Histogram of ranked-store rebuild duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_entries",
		Help:      "Number of ranked entries currently held by the result store",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration by endpoint in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// Package-level helpers delegating to the global manager.

// RecordListingsScored counts listings run through factor scoring.
func RecordListingsScored(count int) {
	globalManager.listingsScored.Add(float64(count))
}

// ObserveFactorComputeDuration records one full factor-score pass.
func ObserveFactorComputeDuration(ms float64) {
	globalManager.factorComputeDuration.Observe(ms)
}

// ObserveRescoreDuration records one weighted aggregation pass.
func ObserveRescoreDuration(ms float64) {
	globalManager.rescoreDuration.Observe(ms)
}

// RecordSnapshotPublished counts published dataset snapshots.
func RecordSnapshotPublished() {
	globalManager.snapshotsPublished.Inc()
}

// UpdateSnapshotListings sets the current snapshot's listing count.
func UpdateSnapshotListings(count int) {
	globalManager.snapshotListings.Set(float64(count))
}

// RecordSnapshotDropped counts records discarded during a snapshot build.
func RecordSnapshotDropped(count int) {
	globalManager.snapshotDropped.Add(float64(count))
}

// RecordScoreCacheHit counts a score cache hit.
func RecordScoreCacheHit() {
	globalManager.scoreCacheHits.Inc()
}

// RecordScoreCacheMiss counts a score cache miss.
func RecordScoreCacheMiss() {
	globalManager.scoreCacheMisses.Inc()
}

// ObserveStoreRebuildDuration records one ranked-store rebuild.
func ObserveStoreRebuildDuration(ms float64) {
	globalManager.storeRebuildDuration.Observe(ms)
}

// UpdateStoreEntries sets the ranked store's entry count.
func UpdateStoreEntries(count int) {
	globalManager.storeEntries.Set(float64(count))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// ObserveHTTPRequestDuration records one HTTP request's duration.
func ObserveHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// GetRegistry returns the custom registry used for the /healthz exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
