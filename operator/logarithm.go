package operator

import "math"

// LogarithmOperator computes the logarithm of antilogarithm in an arbitrary
// base.
type LogarithmOperator struct{}

// Calculate returns ln(antilogarithm) / ln(base). The base is validated
// before the antilogarithm. NaN operands pass validation and yield NaN.
func (LogarithmOperator) Calculate(base, antilogarithm float64) (float64, error) {
	if base <= 0 || base == 1 {
		return math.NaN(), &InvalidArgumentError{
			Param:  "base",
			Value:  base,
			Reason: "base must be positive and not 1",
		}
	}
	if antilogarithm <= 0 {
		return math.NaN(), &InvalidArgumentError{
			Param:  "antilogarithm",
			Value:  antilogarithm,
			Reason: "antilogarithm must be positive",
		}
	}
	return math.Log(antilogarithm) / math.Log(base), nil
}

var _ BinaryOperator[float64] = LogarithmOperator{}
