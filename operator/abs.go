package operator

import (
	"errors"
	"math/big"
)

// AbsOperator returns the absolute value of an operand of any
// representation with an Absolute strategy.
type AbsOperator[T any] struct {
	abs Absolute[T]
}

// NewAbsOperator binds the operator to the abs representation.
func NewAbsOperator[T any](abs Absolute[T]) (AbsOperator[T], error) {
	if abs == nil {
		return AbsOperator[T]{}, errors.New("operator: nil absolute")
	}
	return AbsOperator[T]{abs: abs}, nil
}

// NewFloatAbsOperator creates a float64 AbsOperator. NaN stays NaN and -0
// becomes +0.
func NewFloatAbsOperator() AbsOperator[float64] {
	return AbsOperator[float64]{abs: Float[float64]{}}
}

// NewBigIntAbsOperator creates an arbitrary-precision integer AbsOperator.
func NewBigIntAbsOperator() AbsOperator[*big.Int] {
	return AbsOperator[*big.Int]{abs: BigInt{}}
}

// Calculate returns |x|. A nil *big.Int operand is an invalid argument.
func (a AbsOperator[T]) Calculate(x T) (T, error) {
	var zero T
	if a.abs == nil {
		return zero, errors.New("operator: abs operator not initialized")
	}
	if isNilBigInt(x) {
		return zero, nilOperand("x")
	}
	return a.abs.Abs(x), nil
}

var (
	_ UnaryOperator[float64]  = AbsOperator[float64]{}
	_ UnaryOperator[*big.Int] = AbsOperator[*big.Int]{}
)
