/*
Package monitoring provides Prometheus metrics for operator tool calls.

# Overview

Every tool executed through the service registry is counted, timed and,
on failure, classified. Each Metrics value owns its own registry, so tests
and embedded uses never collide on metric registration.

# Metrics

  - <namespace>_operator_calls_total{tool,status}
  - <namespace>_operator_duration_seconds{tool}
  - <namespace>_operator_errors_total{tool,error_type}
  - <namespace>_services_registered

# Usage

	metrics := monitoring.NewMetrics("calculator")

	timer := monitoring.NewTimer(metrics, "math.log")
	// ... execute tool ...
	timer.Stop(monitoring.StatusSuccess)

A nil *Metrics is valid and records nothing, which is how metrics are
disabled.

# Metrics Endpoint

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	handler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})
*/
package monitoring
