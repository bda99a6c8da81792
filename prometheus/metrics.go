package prometheus

import (
	"time"

	"gym-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Stored procedure metrics
	DbOperationDuration prometheus.HistogramVec
	DbErrorsCounter     prometheus.CounterVec

	// Per-resource operation metrics
	ResourceOperationsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Stored procedure call duration, labeled by procedure name
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of stored procedure calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)

	// Stored procedure failures, labeled by classified error kind
	DbErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_db_errors_total",
			Help: "Total number of classified stored procedure errors",
		},
		[]string{"procedure", "kind"},
	)

	// Resource operations (producto/clase/plan x list/get/create/update/delete)
	ResourceOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_resource_operations_total",
			Help: "Total number of resource operations",
		},
		[]string{"resource", "operation"},
	)
}

// TrackDBOperation returns a function that records the duration of a stored
// procedure call
func TrackDBOperation(procedure string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(procedure).Observe(duration)
	}
}

// RecordDBError increments the counter for a classified procedure failure
func RecordDBError(procedure, kind string) {
	DbErrorsCounter.WithLabelValues(procedure, kind).Inc()
}

// RecordResourceOperation increments the counter for resource operations
func RecordResourceOperation(resource, operation string) {
	ResourceOperationsCounter.WithLabelValues(resource, operation).Inc()
}
