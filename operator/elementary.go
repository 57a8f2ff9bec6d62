package operator

import (
	"errors"
	"math/big"
)

// Operation selects the arithmetic performed by an
// ElementaryArithmeticOperator.
type Operation int

const (
	Addition Operation = iota + 1
	Subtraction
	Multiplication
	Division
)

func (op Operation) String() string {
	switch op {
	case Addition:
		return "addition"
	case Subtraction:
		return "subtraction"
	case Multiplication:
		return "multiplication"
	case Division:
		return "division"
	default:
		return "unknown"
	}
}

// Valid reports whether op is one of the four arithmetic operations.
func (op Operation) Valid() bool {
	return op >= Addition && op <= Division
}

// ElementaryArithmeticOperator applies one fixed arithmetic operation to two
// operands of any representation with an Arithmetic strategy.
type ElementaryArithmeticOperator[T any] struct {
	op    Operation
	arith Arithmetic[T]
}

// NewElementaryArithmeticOperator binds op to the arith representation.
func NewElementaryArithmeticOperator[T any](op Operation, arith Arithmetic[T]) (ElementaryArithmeticOperator[T], error) {
	if !op.Valid() {
		return ElementaryArithmeticOperator[T]{}, unknownOperation(op)
	}
	if arith == nil {
		return ElementaryArithmeticOperator[T]{}, errors.New("operator: nil arithmetic")
	}
	return ElementaryArithmeticOperator[T]{op: op, arith: arith}, nil
}

// NewFloatArithmeticOperator creates a float64 arithmetic operator.
func NewFloatArithmeticOperator(op Operation) (ElementaryArithmeticOperator[float64], error) {
	return NewElementaryArithmeticOperator[float64](op, Float[float64]{})
}

// NewBigIntArithmeticOperator creates an arbitrary-precision integer
// arithmetic operator.
func NewBigIntArithmeticOperator(op Operation) (ElementaryArithmeticOperator[*big.Int], error) {
	return NewElementaryArithmeticOperator[*big.Int](op, BigInt{})
}

// MustFloatArithmeticOperator is like NewFloatArithmeticOperator but panics
// on an unknown operation.
func MustFloatArithmeticOperator(op Operation) ElementaryArithmeticOperator[float64] {
	o, err := NewFloatArithmeticOperator(op)
	if err != nil {
		panic(err)
	}
	return o
}

// MustBigIntArithmeticOperator is like NewBigIntArithmeticOperator but
// panics on an unknown operation.
func MustBigIntArithmeticOperator(op Operation) ElementaryArithmeticOperator[*big.Int] {
	o, err := NewBigIntArithmeticOperator(op)
	if err != nil {
		panic(err)
	}
	return o
}

// Operation returns the tag fixed at construction.
func (e ElementaryArithmeticOperator[T]) Operation() Operation {
	return e.op
}

// Calculate applies the operation to left and right. A nil *big.Int operand
// is an invalid argument.
func (e ElementaryArithmeticOperator[T]) Calculate(left, right T) (T, error) {
	var zero T
	if isNilBigInt(left) {
		return zero, nilOperand("left")
	}
	if isNilBigInt(right) {
		return zero, nilOperand("right")
	}

	switch e.op {
	case Addition:
		return e.arith.Add(left, right), nil
	case Subtraction:
		return e.arith.Sub(left, right), nil
	case Multiplication:
		return e.arith.Mul(left, right), nil
	case Division:
		return e.arith.Div(left, right)
	default:
		return zero, unknownOperation(e.op)
	}
}

var (
	_ BinaryOperator[float64]  = ElementaryArithmeticOperator[float64]{}
	_ BinaryOperator[*big.Int] = ElementaryArithmeticOperator[*big.Int]{}
)
