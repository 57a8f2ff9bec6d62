package operator

import "math"

// PowerOperator raises a base to an exponent with math.Pow semantics
// (0^0 = 1, negative base with a fractional exponent = NaN).
type PowerOperator struct{}

func (PowerOperator) Calculate(base, exponent float64) (float64, error) {
	return math.Pow(base, exponent), nil
}

// RootOperator computes radicand^(1/rootIndex). The zero value uses an exact
// reciprocal.
type RootOperator struct {
	reciprocal Reciprocal
}

// NewRootOperator creates a RootOperator configured by opts.
func NewRootOperator(opts ...Option) (RootOperator, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return RootOperator{}, err
	}
	return RootOperator{reciprocal: o.reciprocal}, nil
}

// Reciprocal returns the reciprocal mode fixed at construction.
func (r RootOperator) Reciprocal() Reciprocal {
	return r.reciprocal
}

// Calculate returns the rootIndex-th root of radicand. rootIndex 0 is not
// guarded; math.Pow decides the result for the infinite exponent.
func (r RootOperator) Calculate(radicand, rootIndex float64) (float64, error) {
	return math.Pow(radicand, r.reciprocal.of(rootIndex)), nil
}

var (
	_ BinaryOperator[float64] = PowerOperator{}
	_ BinaryOperator[float64] = RootOperator{}
)
