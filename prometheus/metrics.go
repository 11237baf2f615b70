package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefix = "lead_service"

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Lead metrics
	LeadOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of lead operations",
		},
		[]string{"operation"},
	)

	ValidationFailuresCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_validation_failures_total",
			Help: "Total number of lead create requests rejected per missing field",
		},
		[]string{"field"},
	)

	LeadsTotalGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_leads_total",
			Help: "Number of leads currently stored",
		},
	)
)

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordLeadOperation increments the counter for lead operations
func RecordLeadOperation(operation string) {
	LeadOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordValidationFailure increments the rejection counter for a missing field
func RecordValidationFailure(field string) {
	ValidationFailuresCounter.WithLabelValues(field).Inc()
}

// UpdateLeadsTotal updates the stored-leads gauge
func UpdateLeadsTotal(count int64) {
	LeadsTotalGauge.Set(float64(count))
}

// Handler returns an HTTP handler for exposing the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
