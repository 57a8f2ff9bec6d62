// Package config provides 12-factor configuration for the calculator.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Metrics: Prometheus collection and metric namespace
//   - Operators: Reciprocal strategy for roots and sec/csc/cot
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	mode, _ := cfg.Operators.Reciprocal()
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED, METRICS_NAMESPACE
//   - RECIPROCAL_MODE (exact, estimate)
package config
