package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned when an exact representation is divided
	// by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned for tags outside their enumeration.
	ErrUnknownOperation = errors.New("unknown operation")
)

// InvalidArgumentError reports an operand outside an operator's domain or a
// nil operand.
type InvalidArgumentError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func nilOperand(param string) error {
	return &InvalidArgumentError{Param: param, Value: nil, Reason: "operand must not be nil"}
}

func unknownOperation(op Operation) error {
	return fmt.Errorf("%w: arithmetic operation %d", ErrUnknownOperation, int(op))
}

func unknownTrigFunction(fn TrigFunction) error {
	return fmt.Errorf("%w: trig function %d", ErrUnknownOperation, int(fn))
}

func unknownReciprocal(r Reciprocal) error {
	return fmt.Errorf("%w: reciprocal mode %d", ErrUnknownOperation, int(r))
}
