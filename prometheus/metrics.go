package prometheus

import (
	"time"

	"inventory-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Record operation metrics
	RecordOperationsCounter prometheus.CounterVec

	// Export pipeline metrics
	ExportRunsCounter prometheus.CounterVec
	ExportDuration    prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

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

	// Record operation metrics
	RecordOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_record_operations_total",
			Help: "Total number of record operations by entity",
		},
		[]string{"entity", "operation"},
	)

	// Export run metrics
	ExportRunsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_export_runs_total",
			Help: "Total number of export runs between engines",
		},
		[]string{"source", "destination", "status"},
	)

	// Export duration
	ExportDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_export_duration_seconds",
			Help:    "Duration of export runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "destination"},
	)
}

// RecordOperation increments the counter for record operations
func RecordOperation(entity string, operation string) {
	RecordOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordExportRun records the outcome and duration of one export run
func RecordExportRun(source string, destination string, status string, startTime time.Time) {
	ExportRunsCounter.WithLabelValues(source, destination, status).Inc()
	ExportDuration.WithLabelValues(source, destination).Observe(time.Since(startTime).Seconds())
}
