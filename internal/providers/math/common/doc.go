// Package common holds helpers shared by the math provider modules.
//
//   - Result helpers: Success, Value, Failure, OperatorFailure
//   - Parameter extraction: GetNumber, GetBigInt and their pair variants
//   - Error classification: ErrorKind maps operator errors to stable kinds
//     used in failed results and metric labels
//
// Floats follow IEEE-754: NaN and ±Inf are successful results. Only errors
// returned by the operator package become failures.
package common
