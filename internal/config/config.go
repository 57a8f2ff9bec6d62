package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/logging"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// Config holds all calculator configuration.
type Config struct {
	Logging   LogConfig
	Metrics   MetricsConfig
	Operators OperatorConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds Prometheus configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"calculator"`
}

// OperatorConfig holds operator behavior settings.
type OperatorConfig struct {
	// ReciprocalMode is "exact" or "estimate".
	ReciprocalMode string `envconfig:"RECIPROCAL_MODE" default:"exact"`
}

// Reciprocal maps ReciprocalMode to the operator setting.
func (o OperatorConfig) Reciprocal() (operator.Reciprocal, error) {
	switch strings.ToLower(strings.TrimSpace(o.ReciprocalMode)) {
	case "", "exact":
		return operator.ReciprocalExact, nil
	case "estimate":
		return operator.ReciprocalEstimate, nil
	default:
		return operator.ReciprocalExact, fmt.Errorf("unknown reciprocal mode %q", o.ReciprocalMode)
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "calculator",
		},
		Operators: OperatorConfig{
			ReciprocalMode: "exact",
		},
	}
}

// Validate checks values envconfig cannot check by itself.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Operators.Reciprocal(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("invalid config: metrics namespace required when metrics are enabled")
	}
	return nil
}

// LoggerConfig converts the logging section for logging.New.
func (c *Config) LoggerConfig() logging.Config {
	if c.Logging.Development {
		cfg := logging.DevelopmentConfig()
		cfg.Level = c.Logging.Level
		return cfg
	}
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	return cfg
}
