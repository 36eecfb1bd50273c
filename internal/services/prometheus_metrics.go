package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	toolInvocations    *prometheus.CounterVec
	toolDuration       *prometheus.HistogramVec
	ledgerRequests     *prometheus.CounterVec
	ledgerCircuitState prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		toolInvocations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_invocations_total",
				Help: "Total number of tool invocations",
			},
			[]string{"tool", "outcome"},
		),
		toolDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tool_invocation_duration_milliseconds",
				Help:    "Tool invocation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"tool"},
		),
		ledgerRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_requests_total",
				Help: "Total number of payments ledger API requests",
			},
			[]string{"endpoint", "outcome"},
		),
		ledgerCircuitState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_circuit_breaker_state",
				Help: "Ledger circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordToolInvocation(tool, outcome string, duration time.Duration) {
	m.toolInvocations.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordLedgerRequest(endpoint, outcome string) {
	m.ledgerRequests.WithLabelValues(endpoint, outcome).Inc()
}

func (m *PrometheusMetrics) SetLedgerCircuitState(state float64) {
	m.ledgerCircuitState.Set(state)
}
