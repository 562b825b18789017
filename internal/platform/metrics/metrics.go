// Package metrics registers process-level Prometheus metrics. Domain slices
// keep their own metrics packages next to their services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds cross-cutting Prometheus metrics for the application.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	LoginAttempts   *prometheus.CounterVec
}

// New creates and registers all platform metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "regdesk_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_login_attempts_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(route, status).Observe(seconds)
}

// IncLogin records a login attempt outcome ("success" or "failure").
func (m *Metrics) IncLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}
