// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the profkom backend.
package observability

import "github.com/prometheus/client_golang/prometheus"

// APIBuckets defines histogram buckets suited for a CRUD API, ranging
// from 5ms to 10s. The upper buckets cover bcrypt hashing on login and
// multipart uploads.
var APIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profkom_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "profkom_request_duration_seconds",
			Help:    "Request duration",
			Buckets: APIBuckets,
		},
		[]string{"method"},
	)

	// LoginAttemptsTotal counts login attempts by outcome (ok, rejected, error).
	LoginAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profkom_login_attempts_total",
			Help: "Login attempts",
		},
		[]string{"outcome"},
	)

	// AuthRejectedTotal counts requests rejected by the admin gate, by reason
	// (missing_credentials, malformed, bad_signature, expired, not_yet_valid,
	// forbidden).
	AuthRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profkom_auth_rejected_total",
			Help: "Gate rejections",
		},
		[]string{"reason"},
	)

	// UploadsTotal counts file uploads by outcome (ok, error).
	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profkom_uploads_total",
			Help: "File uploads",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		LoginAttemptsTotal,
		AuthRejectedTotal,
		UploadsTotal,
	)
}
