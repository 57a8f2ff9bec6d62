package operator

import "math"

// Reciprocal selects how 1/x is computed by RootOperator and the
// Sec, Csc and Cot trig functions.
type Reciprocal int

const (
	// ReciprocalExact divides 1 by x.
	ReciprocalExact Reciprocal = iota

	// ReciprocalEstimate keeps EstimateBits significant mantissa bits of the
	// reciprocal, like a hardware reciprocal-estimate instruction. Relative
	// error is at most 2^-EstimateBits.
	ReciprocalEstimate
)

// EstimateBits is the mantissa precision of ReciprocalEstimate.
const EstimateBits = 14

func (r Reciprocal) String() string {
	switch r {
	case ReciprocalExact:
		return "exact"
	case ReciprocalEstimate:
		return "estimate"
	default:
		return "unknown"
	}
}

// Valid reports whether r is a known mode.
func (r Reciprocal) Valid() bool {
	return r == ReciprocalExact || r == ReciprocalEstimate
}

// of returns 1/x. ±0 maps to ±Inf and ±Inf to ±0 in both modes.
// Constructors reject unknown modes, so the default branch is unreachable
// through the public API.
func (r Reciprocal) of(x float64) float64 {
	switch r {
	case ReciprocalExact:
		return 1 / x
	case ReciprocalEstimate:
		return estimateReciprocal(x)
	default:
		return math.NaN()
	}
}

func estimateReciprocal(x float64) float64 {
	exact := 1 / x
	if exact == 0 || math.IsInf(exact, 0) || math.IsNaN(exact) {
		return exact
	}

	// Round to nearest on the kept bits. A carry out of the mantissa
	// correctly bumps the exponent.
	const drop = 52 - EstimateBits
	bits := math.Float64bits(exact)
	bits += 1 << (drop - 1)
	bits &^= 1<<drop - 1
	return math.Float64frombits(bits)
}
