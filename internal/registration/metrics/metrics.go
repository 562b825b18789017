// Package metrics exposes Prometheus counters for saga outcomes. It
// implements saga.Observer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts registration saga outcomes.
type Metrics struct {
	SagasCompleted      *prometheus.CounterVec
	SagasFailed         *prometheus.CounterVec
	CompensationsRun    *prometheus.CounterVec
	CompensationsFailed *prometheus.CounterVec
	BestEffortFailures  *prometheus.CounterVec
}

// New creates and registers the registration metrics.
func New() *Metrics {
	return &Metrics{
		SagasCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_sagas_completed_total",
			Help: "Sagas that completed every hard step.",
		}, []string{"saga"}),
		SagasFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_sagas_failed_total",
			Help: "Sagas aborted at a hard step.",
		}, []string{"saga", "step"}),
		CompensationsRun: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_compensations_total",
			Help: "Compensating actions executed after a later step failed.",
		}, []string{"saga", "step"}),
		CompensationsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_compensation_failures_total",
			Help: "Compensating actions that themselves failed (degraded outcome).",
		}, []string{"saga", "step"}),
		BestEffortFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_registration_best_effort_failures_total",
			Help: "Best-effort steps that failed without changing the saga verdict.",
		}, []string{"saga", "step"}),
	}
}

func (m *Metrics) SagaSucceeded(saga string) {
	m.SagasCompleted.WithLabelValues(saga).Inc()
}

func (m *Metrics) SagaFailed(saga, step string) {
	m.SagasFailed.WithLabelValues(saga, step).Inc()
}

func (m *Metrics) CompensationRun(saga, step string) {
	m.CompensationsRun.WithLabelValues(saga, step).Inc()
}

func (m *Metrics) CompensationFailed(saga, step string) {
	m.CompensationsFailed.WithLabelValues(saga, step).Inc()
}

func (m *Metrics) BestEffortFailed(saga, step string) {
	m.BestEffortFailures.WithLabelValues(saga, step).Inc()
}
