package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status labels for tool calls
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Registry metrics
	ServicesRegistered prometheus.Gauge

	// Snapshot for tests and status output - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values
type MetricsSnapshot struct {
	TotalCalls    int64
	TotalFailures int64
	TotalErrors   int64
	TotalDuration float64 // sum of all call durations in seconds
}

// NewMetrics creates a metrics collector with its own registry, so
// several collectors can coexist in one process.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operator_calls_total",
				Help:      "Total number of operator tool calls",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operator_duration_seconds",
				Help:      "Operator tool call duration in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"tool"},
		),
		ToolErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operator_errors_total",
				Help:      "Total number of failed operator tool calls",
			},
			[]string{"tool", "error_type"},
		),

		ServicesRegistered: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "services_registered",
				Help:      "Number of registered service providers",
			},
		),
	}
}

// Registry returns the Prometheus registry, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordToolCall records a tool call
func (m *Metrics) RecordToolCall(tool, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalCalls++
	m.snapshot.TotalDuration += duration.Seconds()
	switch status {
	case StatusFailure:
		m.snapshot.TotalFailures++
	case StatusError:
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordToolError records why a tool call failed
func (m *Metrics) RecordToolError(tool, errorType string) {
	if m == nil {
		return
	}
	m.ToolErrors.WithLabelValues(tool, errorType).Inc()
}

// SetServicesRegistered sets the number of registered providers
func (m *Metrics) SetServicesRegistered(count int) {
	if m == nil {
		return
	}
	m.ServicesRegistered.Set(float64(count))
}

// Snapshot returns the current snapshot values
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
