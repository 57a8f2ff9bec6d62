package operator

// UnaryOperator computes a result from a single operand.
type UnaryOperator[T any] interface {
	Calculate(x T) (T, error)
}

// BinaryOperator computes a result from two operands of the same
// representation.
type BinaryOperator[T any] interface {
	Calculate(left, right T) (T, error)
}

// Option configures operators that compute reciprocals.
type Option func(*options)

type options struct {
	reciprocal Reciprocal
}

// WithReciprocal selects how the operator computes 1/x.
func WithReciprocal(r Reciprocal) Option {
	return func(o *options) {
		o.reciprocal = r
	}
}

func buildOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.reciprocal.Valid() {
		return o, unknownReciprocal(o.reciprocal)
	}
	return o, nil
}
