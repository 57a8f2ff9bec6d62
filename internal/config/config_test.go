package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Metrics config
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "calculator", cfg.Metrics.Namespace)

	// Operator config
	assert.Equal(t, "exact", cfg.Operators.ReciprocalMode)
	require.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "exact", cfg.Operators.ReciprocalMode)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_NAMESPACE", "ops")
	t.Setenv("RECIPROCAL_MODE", "estimate")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "ops", cfg.Metrics.Namespace)

	mode, err := cfg.Operators.Reciprocal()
	require.NoError(t, err)
	assert.Equal(t, operator.ReciprocalEstimate, mode)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "exact", cfg.Operators.ReciprocalMode)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown reciprocal mode", "RECIPROCAL_MODE", "fast"},
		{"unknown log level", "LOG_LEVEL", "loud"},
		{"malformed bool", "LOG_DEV", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestReciprocal(t *testing.T) {
	tests := []struct {
		mode    string
		want    operator.Reciprocal
		wantErr bool
	}{
		{"exact", operator.ReciprocalExact, false},
		{"", operator.ReciprocalExact, false},
		{" Estimate ", operator.ReciprocalEstimate, false},
		{"fast", operator.ReciprocalExact, true},
	}

	for _, tt := range tests {
		got, err := OperatorConfig{ReciprocalMode: tt.mode}.Reciprocal()
		if tt.wantErr {
			assert.Error(t, err, tt.mode)
			continue
		}
		require.NoError(t, err, tt.mode)
		assert.Equal(t, tt.want, got, tt.mode)
	}
}

func TestValidateMetricsNamespace(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Namespace = ""
	assert.Error(t, cfg.Validate())

	cfg.Metrics.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "warn"

	lc := cfg.LoggerConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.False(t, lc.Development)

	cfg.Logging.Development = true
	lc = cfg.LoggerConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.True(t, lc.Development)
}
