package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIsolated(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("calculator")
		NewMetrics("calculator")
	})
}

func TestRecordToolCall(t *testing.T) {
	m := NewMetrics("test")

	m.RecordToolCall("math.add", StatusSuccess, time.Millisecond)
	m.RecordToolCall("math.add", StatusSuccess, time.Millisecond)
	m.RecordToolCall("math.log", StatusFailure, time.Millisecond)
	m.RecordToolError("math.log", "invalid_argument")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("math.add", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("math.log", StatusFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolErrors.WithLabelValues("math.log", "invalid_argument")))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalCalls)
	assert.Equal(t, int64(1), snap.TotalFailures)
	assert.Equal(t, int64(0), snap.TotalErrors)
	assert.InDelta(t, 0.003, snap.TotalDuration, 1e-9)
}

func TestGatherUsesNamespace(t *testing.T) {
	m := NewMetrics("ops")
	m.RecordToolCall("math.sin", StatusSuccess, time.Microsecond)
	m.SetServicesRegistered(1)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "ops_operator_calls_total")
	assert.Contains(t, names, "ops_operator_duration_seconds")
	assert.Contains(t, names, "ops_services_registered")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordToolCall("math.add", StatusSuccess, time.Second)
		m.RecordToolError("math.add", "x")
		m.SetServicesRegistered(3)
		NewTimer(m, "math.add").Stop(StatusSuccess)
	})
	assert.Nil(t, m.Registry())
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
}

func TestTimer(t *testing.T) {
	m := NewMetrics("test")

	timer := NewTimer(m, "math.root")
	d := timer.Stop(StatusError)

	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("math.root", StatusError)))
	assert.Equal(t, int64(1), m.Snapshot().TotalErrors)
}
