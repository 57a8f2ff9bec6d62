// Package math exposes the operator package as service tools.
//
// Tools are grouped by module:
//   - operations: float arithmetic, power, root, logarithm, absolute value
//     and the six trig functions
//   - advanced: arbitrary-precision integer arithmetic with base-10 string
//     operands and results
//   - common: shared parameter extraction and result helpers
//
// Domain errors from the operators (for example a logarithm base of 1)
// come back as failed results carrying an error kind. The Go error return
// is reserved for failures of the provider itself.
//
// Example Usage:
//
//	provider := math.NewProvider(math.WithReciprocal(operator.ReciprocalEstimate))
//	result, err := provider.Execute(ctx, "math.sec", map[string]interface{}{"x": 1.0}, nil)
package math
