// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The operator package never logs; logging happens where operators are
// executed as tools (providers and the service registry).
//
// Field helpers keep keys consistent across the codebase:
//   - Tool: tool ID being executed ("math.log")
//   - Request: per-execution request ID
//   - Operands: raw tool parameters
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	logger.Debug("executing tool", logging.Tool("math.add"), logging.Request(reqID))
//	logger.Warn("tool failed", logging.Tool("math.log"), zap.Error(err))
package logging
