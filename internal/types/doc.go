// Package types provides shared data structures for the calculator.
//
// Core Types:
//   - Service: Provider definition with its tools
//   - Tool: A single operator exposed by a provider
//   - Parameter: Named operand of a tool
//   - Context: Execution context (request ID, caller)
//   - Result: Standard operation result
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"result": 42.0},
//	}
//	v, ok := result.Value()
package types
