// Package service provides the service registry for operator tools.
//
// The registry maintains a catalog of providers, routes tool calls to the
// provider named by the tool ID prefix, and instruments every call.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Tool discovery with relevance scoring
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based tool discovery
//   - Request IDs assigned to calls that arrive without one
//   - Structured logging and Prometheus metrics per call
//
// Discovery Algorithm:
//   - Whole-word match on the tool ID suffix and tool name
//   - Smaller bonus for description words
//   - Score-based ranking, ties broken by tool ID
//
// Example Usage:
//
//	registry := service.NewRegistry(logger, metrics)
//	registry.Register(math.NewProvider())
//	tools := registry.Discover("cosecant of x", 5)
//	result, err := registry.Execute(ctx, "math.csc", params, appCtx)
package service
