package common

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// MathOps provides common math helpers
type MathOps struct {
	Reciprocal operator.Reciprocal
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Value creates a successful result holding a single value
func Value(v interface{}) (*types.Result, error) {
	return Success(map[string]interface{}{"result": v})
}

// Failure creates a failed result for missing or mistyped parameters
func Failure(message string) (*types.Result, error) {
	return FailureKind(types.KindInvalidParameter, message)
}

// FailureKind creates a failed result tagged with kind
func FailureKind(kind, message string) (*types.Result, error) {
	return &types.Result{
		Success: false,
		Error:   stringPtr(message),
		Data:    map[string]interface{}{"kind": kind},
	}, nil
}

// OperatorFailure reports an operator error as a failed result. Domain
// errors are failures of the call, not of the provider.
func OperatorFailure(err error) (*types.Result, error) {
	var argErr *operator.InvalidArgumentError
	if errors.As(err, &argErr) {
		return &types.Result{
			Success: false,
			Error:   stringPtr(err.Error()),
			Data:    map[string]interface{}{"parameter": argErr.Param, "kind": types.KindInvalidArgument},
		}, nil
	}
	return FailureKind(ErrorKind(err), err.Error())
}

// ErrorKind classifies an operator error as one of the types.Kind values
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, operator.ErrInvalidArgument):
		return types.KindInvalidArgument
	case errors.Is(err, operator.ErrDivisionByZero):
		return types.KindDivisionByZero
	case errors.Is(err, operator.ErrUnknownOperation):
		return types.KindUnknownOperation
	default:
		return types.KindInternal
	}
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetBigInt extracts an arbitrary-precision integer from params. Strings
// are parsed as base-10; integer kinds are converted exactly.
func GetBigInt(params map[string]interface{}, key string) (*big.Int, bool) {
	val, ok := params[key]
	if !ok {
		return nil, false
	}

	switch v := val.(type) {
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		return n, ok
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return new(big.Int).Set(v), true
	case int:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case int32:
		return big.NewInt(int64(v)), true
	default:
		return nil, false
	}
}

// GetNumberPair extracts two required numbers
func GetNumberPair(params map[string]interface{}, first, second string) (float64, float64, error) {
	a, ok := GetNumber(params, first)
	if !ok {
		return 0, 0, fmt.Errorf("%s parameter required", first)
	}
	b, ok := GetNumber(params, second)
	if !ok {
		return 0, 0, fmt.Errorf("%s parameter required", second)
	}
	return a, b, nil
}

// GetBigIntPair extracts two required integers
func GetBigIntPair(params map[string]interface{}, first, second string) (*big.Int, *big.Int, error) {
	a, ok := GetBigInt(params, first)
	if !ok {
		return nil, nil, fmt.Errorf("%s parameter required (integer or base-10 string)", first)
	}
	b, ok := GetBigInt(params, second)
	if !ok {
		return nil, nil, fmt.Errorf("%s parameter required (integer or base-10 string)", second)
	}
	return a, b, nil
}

func stringPtr(s string) *string {
	return &s
}
