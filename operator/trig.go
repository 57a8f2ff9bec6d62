package operator

import "math"

// TrigFunction selects the function computed by a TrigOperator.
type TrigFunction int

const (
	Sin TrigFunction = iota + 1
	Cos
	Tan
	Sec
	Csc
	Cot
)

func (fn TrigFunction) String() string {
	switch fn {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	case Sec:
		return "sec"
	case Csc:
		return "csc"
	case Cot:
		return "cot"
	default:
		return "unknown"
	}
}

// Valid reports whether fn is one of the six trig functions.
func (fn TrigFunction) Valid() bool {
	return fn >= Sin && fn <= Cot
}

// TrigOperator evaluates one fixed trig function on an angle in radians.
// Undefined points are not validated: tan(π/2) is a huge finite number and
// csc(0) is +Inf.
type TrigOperator struct {
	fn         TrigFunction
	reciprocal Reciprocal
}

// NewTrigOperator creates a TrigOperator for fn. WithReciprocal affects Sec,
// Csc and Cot only.
func NewTrigOperator(fn TrigFunction, opts ...Option) (TrigOperator, error) {
	if !fn.Valid() {
		return TrigOperator{}, unknownTrigFunction(fn)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return TrigOperator{}, err
	}
	return TrigOperator{fn: fn, reciprocal: o.reciprocal}, nil
}

// MustTrigOperator is like NewTrigOperator but panics on error.
func MustTrigOperator(fn TrigFunction, opts ...Option) TrigOperator {
	t, err := NewTrigOperator(fn, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Function returns the tag fixed at construction.
func (t TrigOperator) Function() TrigFunction {
	return t.fn
}

func (t TrigOperator) Calculate(x float64) (float64, error) {
	switch t.fn {
	case Sin:
		return math.Sin(x), nil
	case Cos:
		return math.Cos(x), nil
	case Tan:
		return math.Tan(x), nil
	case Sec:
		return t.reciprocal.of(math.Cos(x)), nil
	case Csc:
		return t.reciprocal.of(math.Sin(x)), nil
	case Cot:
		return t.reciprocal.of(math.Tan(x)), nil
	default:
		return math.NaN(), unknownTrigFunction(t.fn)
	}
}

var _ UnaryOperator[float64] = TrigOperator{}
