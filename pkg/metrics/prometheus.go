// Package metrics provides Prometheus metrics for the talkscore service.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Default bucket layouts. Latency is in milliseconds; scores cover 0-100 in
// ten-point steps.
func defaultLatencyBuckets() []float64 { return prometheus.ExponentialBuckets(0.05, 2, 14) }
func defaultScoreBuckets() []float64   { return prometheus.LinearBuckets(10, 10, 10) }

// Manager manages all Prometheus metrics for the talkscore service.
type Manager struct {
	namespace       string
	subsystem       string
	latencyBuckets  []float64
	scoreBuckets    []float64
	scoringEnabled  bool
	refreshInterval time.Duration
	constLabels     map[string]string
	metricPrefix    string
	registry        prometheus.Registerer

	// Scoring
	transcriptsScored  prometheus.Counter
	validationFailures *prometheus.CounterVec
	overallScore       prometheus.Histogram
	criterionScore     *prometheus.HistogramVec
	scoringLatency     prometheus.Histogram
	wordsPerMinute     prometheus.Histogram

	// History store
	historySize      prometheus.Gauge
	historyCapacity  prometheus.Gauge
	historyEvictions prometheus.Counter
	historyClears    prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLimited         *prometheus.CounterVec

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

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegisterer(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "talkscore",
		subsystem:       "scoring",
		latencyBuckets:  defaultLatencyBuckets(),
		scoreBuckets:    defaultScoreBuckets(),
		scoringEnabled:  true,
		refreshInterval: defaultRefreshInterval,
		constLabels:     make(map[string]string),
		registry:        prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.transcriptsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("transcripts_scored_total"),
		Help:        "Total number of transcripts scored",
		ConstLabels: labels,
	})

	m.validationFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("validation_failures_total"),
		Help:        "Total number of transcripts rejected at the request boundary",
		ConstLabels: labels,
	}, []string{"reason"})

	m.overallScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("overall_score"),
		Help:        "Distribution of overall scores (0-100)",
		Buckets:     m.scoreBuckets,
		ConstLabels: labels,
	})

	m.criterionScore = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("criterion_score_ratio"),
		Help:        "Distribution of criterion scores as a fraction of their maximum",
		Buckets:     prometheus.LinearBuckets(0.1, 0.1, 10),
		ConstLabels: labels,
	}, []string{"criterion"})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("scoring_latency_milliseconds"),
		Help:        "Histogram of engine scoring latency in milliseconds",
		Buckets:     m.latencyBuckets,
		ConstLabels: labels,
	})

	m.wordsPerMinute = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("words_per_minute"),
		Help:        "Distribution of computed speech rates",
		Buckets:     []float64{80, 110, 140, 160, 200},
		ConstLabels: labels,
	})

	m.historySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("history_size"),
		Help:        "Current number of entries held in the history store",
		ConstLabels: labels,
	})

	m.historyCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("history_capacity"),
		Help:        "Maximum number of entries the history store keeps",
		ConstLabels: labels,
	})

	m.historyEvictions = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("history_evictions_total"),
		Help:        "Total number of history entries evicted to respect capacity",
		ConstLabels: labels,
	})

	m.historyClears = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("history_clears_total"),
		Help:        "Total number of history clear operations",
		ConstLabels: labels,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.latencyBuckets,
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.rateLimited = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("rate_limited_total"),
			Help:        "Total number of requests rejected by the rate limiter",
			ConstLabels: labels,
		},
		[]string{"endpoint"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_component_total"),
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_type_total"),
			Help:        "Total number of errors by type",
			ConstLabels: labels,
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_endpoint_total"),
			Help:        "Total number of errors by endpoint",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("error_latency_milliseconds"),
			Help:        "Latency of operations that resulted in errors",
			Buckets:     m.latencyBuckets,
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_memory_usage_bytes"),
		Help:        "System memory usage in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_goroutine_count"),
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_gc_pause_time_milliseconds"),
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: labels,
	})
}

// RecordTranscriptScored records one completed scoring call.
func RecordTranscriptScored(overall int, wpm float64, latencyMs float64) {
	if !globalManager.scoringEnabled {
		return
	}
	globalManager.transcriptsScored.Inc()
	globalManager.overallScore.Observe(float64(overall))
	globalManager.wordsPerMinute.Observe(wpm)
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordCriterionScore records a criterion score normalized by its maximum.
// A score outside [0, maxScore] is rejected with ErrObserveFailed.
func RecordCriterionScore(criterion string, score, maxScore float64) error {
	if maxScore <= 0 || score < 0 || score > maxScore {
		return fmt.Errorf("%w: criterion %q score %v of %v", ErrObserveFailed, criterion, score, maxScore)
	}
	if !globalManager.scoringEnabled {
		return nil
	}
	globalManager.criterionScore.WithLabelValues(criterion).Observe(score / maxScore)
	return nil
}

// RecordValidationFailure increments rejected transcripts by reason.
func RecordValidationFailure(reason string) {
	globalManager.validationFailures.WithLabelValues(reason).Inc()
}

// UpdateHistorySize sets the current history size.
func UpdateHistorySize(size int) {
	globalManager.historySize.Set(float64(size))
}

// UpdateHistoryCapacity sets the configured history capacity.
func UpdateHistoryCapacity(capacity int) {
	globalManager.historyCapacity.Set(float64(capacity))
}

// RecordHistoryEviction increments the history eviction counter.
func RecordHistoryEviction() {
	globalManager.historyEvictions.Inc()
}

// RecordHistoryClear increments the history clear counter.
func RecordHistoryClear() {
	globalManager.historyClears.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordRateLimited increments the rate-limited counter for an endpoint.
func RecordRateLimited(endpoint string) {
	globalManager.rateLimited.WithLabelValues(endpoint).Inc()
}

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

// RefreshInterval returns how often gauge style system metrics should be refreshed.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
