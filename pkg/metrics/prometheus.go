// Package metrics provides Prometheus metrics for the dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Dataset lifecycle
	datasetLoadDuration *prometheus.HistogramVec
	datasetLoadErrors   *prometheus.CounterVec
	datasetRows         *prometheus.GaugeVec
	datasetLoadedUnix   prometheus.Gauge

	// Figure pipeline
	figureBuilds       *prometheus.CounterVec
	figureBuildLatency *prometheus.HistogramVec
	figureEmpty        *prometheus.CounterVec
	lookupFailures     *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Naming of the process-wide collectors.
const (
	Namespace = "oxdash"
	Subsystem = "dashboard"
)

// LatencyBucketsMs bounds the millisecond latency histograms.
var LatencyBucketsMs = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000} //nolint:gochecknoglobals // shared bucket layout

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(
		WithNamespace(Namespace),
		WithSubsystem(Subsystem),
		WithHistogramBuckets(LatencyBucketsMs),
		WithPrometheusRegistry(customRegistry),
	)
}

// NewManager creates a metrics manager. Collectors are registered on the
// configured registry (prometheus.DefaultRegisterer unless overridden).
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        Namespace,
		subsystem:        Subsystem,
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.datasetLoadDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Time spent fetching and parsing a source table",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	}, []string{"source"})

	m.datasetLoadErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_errors_total",
		Help:      "Source tables that failed to fetch or parse",
	}, []string{"source", "error_type"})

	m.datasetRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Rows held per in-memory table",
	}, []string{"table"})

	m.datasetLoadedUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_loaded_unix",
		Help:      "Unix timestamp of the published dataset snapshot",
	})

	m.figureBuilds = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "figure_builds_total",
		Help:      "Figures assembled by chart kind",
	}, []string{"kind"})

	m.figureBuildLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "figure_build_latency_milliseconds",
		Help:      "Latency of resolving and assembling a figure",
		Buckets:   m.histogramBuckets,
	}, []string{"kind"})

	m.figureEmpty = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "figure_empty_total",
		Help:      "Figures assembled with no rows",
	}, []string{"kind"})

	m.lookupFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_lookup_failures_total",
		Help:      "Unknown scope or metric keys reaching the pipeline",
	}, []string{"kind"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Total number of errors by component",
	}, []string{"component", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Total number of errors by type",
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of errors by endpoint",
	}, []string{"endpoint", "method", "error_type"})

	m.errorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "error_latency_milliseconds",
		Help:      "Latency of operations that resulted in errors",
		Buckets:   m.histogramBuckets,
	}, []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Dataset lifecycle.

// RecordDatasetLoad records how long a source table took to load.
func RecordDatasetLoad(source string, durationMs float64) {
	globalManager.datasetLoadDuration.WithLabelValues(source).Observe(durationMs)
}

// RecordDatasetLoadError counts a failed source load.
func RecordDatasetLoadError(source, errorType string) {
	globalManager.datasetLoadErrors.WithLabelValues(source, errorType).Inc()
}

// UpdateDatasetRows sets the row count of an in-memory table.
func UpdateDatasetRows(table string, rows int) {
	globalManager.datasetRows.WithLabelValues(table).Set(float64(rows))
}

// UpdateDatasetLoadedUnix records when the dataset snapshot was published.
func UpdateDatasetLoadedUnix(ts float64) {
	globalManager.datasetLoadedUnix.Set(ts)
}

// Figure pipeline.

// RecordFigureBuild records a figure assembly and its latency.
func RecordFigureBuild(kind string, latencyMs float64) {
	globalManager.figureBuilds.WithLabelValues(kind).Inc()
	globalManager.figureBuildLatency.WithLabelValues(kind).Observe(latencyMs)
}

// RecordEmptyFigure counts a figure assembled without rows.
func RecordEmptyFigure(kind string) {
	globalManager.figureEmpty.WithLabelValues(kind).Inc()
}

// RecordLookupFailure counts an unknown scope or metric key.
func RecordLookupFailure(kind string) {
	globalManager.lookupFailures.WithLabelValues(kind).Inc()
}

// HTTP.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Errors.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
