package operator

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Arithmetic is the capability set ElementaryArithmeticOperator needs from a
// numeric representation.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) (T, error)
}

// Absolute is the capability set AbsOperator needs from a numeric
// representation.
type Absolute[T any] interface {
	Abs(x T) T
}

// Number is a representation usable by every generic operator.
type Number[T any] interface {
	Arithmetic[T]
	Absolute[T]
}

// Float implements Number for any floating-point width with IEEE-754
// semantics. Division by zero yields ±Inf or NaN, never an error.
type Float[T constraints.Float] struct{}

func (Float[T]) Add(a, b T) T { return a + b }
func (Float[T]) Sub(a, b T) T { return a - b }
func (Float[T]) Mul(a, b T) T { return a * b }

func (Float[T]) Div(a, b T) (T, error) {
	return a / b, nil
}

// Abs widens to float64, which is exact for every float width.
func (Float[T]) Abs(x T) T {
	return T(math.Abs(float64(x)))
}

// BigInt implements Number for *big.Int. Operands are never mutated and
// every result is a new value. Add, Sub, Mul and Abs require non-nil
// operands; the operators check this before calling them.
type BigInt struct{}

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// Div truncates toward zero.
func (BigInt) Div(a, b *big.Int) (*big.Int, error) {
	if a == nil {
		return nil, nilOperand("left")
	}
	if b == nil {
		return nil, nilOperand("right")
	}
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).Quo(a, b), nil
}

func (BigInt) Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

// isNilBigInt reports whether x is a nil *big.Int.
func isNilBigInt[T any](x T) bool {
	p, ok := any(x).(*big.Int)
	return ok && p == nil
}

var (
	_ Number[float64]  = Float[float64]{}
	_ Number[float32]  = Float[float32]{}
	_ Number[*big.Int] = BigInt{}
)
