// Package operator provides elementary and transcendental math operators
// behind two generic contracts.
//
// Contracts:
//   - UnaryOperator[T]: one operand in, one result out (abs, trig)
//   - BinaryOperator[T]: two operands in, one result out (arithmetic,
//     power, root, logarithm)
//
// Numeric representations are plugged in through strategy types rather
// than per-type operator copies:
//   - Float[T]: any float width, IEEE-754 semantics
//   - BigInt: arbitrary-precision signed integers (*big.Int)
//
// Operators are immutable values. The tag selected at construction
// (Operation, TrigFunction) never changes, so a single instance can be
// shared by any number of goroutines.
//
// Edge-case policy:
//   - LogarithmOperator rejects base <= 0, base == 1 and antilogarithm <= 0
//     with an *InvalidArgumentError
//   - BigInt division by zero fails with ErrDivisionByZero
//   - Float results carry NaN and ±Inf instead of failing
//
// Example Usage:
//
//	mul := operator.MustFloatArithmeticOperator(operator.Multiplication)
//	product, _ := mul.Calculate(6, 7) // 42
//
//	log := operator.LogarithmOperator{}
//	exp, err := log.Calculate(2, 1024) // 10, nil
package operator
