package operations

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// ArithmeticOps handles float arithmetic, powers, roots, logarithms and
// absolute values
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add b to a",
			Parameters:  []types.Parameter{numberParam("a", "First number"), numberParam("b", "Second number")},
			Returns:     "number",
		},
		{
			ID:          "math.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters:  []types.Parameter{numberParam("a", "First number"), numberParam("b", "Second number")},
			Returns:     "number",
		},
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply a by b",
			Parameters:  []types.Parameter{numberParam("a", "First number"), numberParam("b", "Second number")},
			Returns:     "number",
		},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide a by b (IEEE-754: division by zero yields ±Inf or NaN)",
			Parameters:  []types.Parameter{numberParam("a", "Dividend"), numberParam("b", "Divisor")},
			Returns:     "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent",
			Parameters:  []types.Parameter{numberParam("base", "Base"), numberParam("exponent", "Exponent")},
			Returns:     "number",
		},
		{
			ID:          "math.root",
			Name:        "Root",
			Description: "Calculate the index-th root of radicand",
			Parameters:  []types.Parameter{numberParam("radicand", "Radicand"), numberParam("index", "Root index")},
			Returns:     "number",
		},
		{
			ID:          "math.log",
			Name:        "Logarithm",
			Description: "Calculate the logarithm of antilogarithm in the given base",
			Parameters: []types.Parameter{
				numberParam("base", "Positive base other than 1"),
				numberParam("antilogarithm", "Positive number"),
			},
			Returns: "number",
		},
		{
			ID:          "math.abs",
			Name:        "Absolute Value",
			Description: "Get absolute value of a number",
			Parameters:  []types.Parameter{numberParam("x", "Number")},
			Returns:     "number",
		},
	}
}

// Add adds b to a
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalBinary(params, "a", "b", operator.MustFloatArithmeticOperator(operator.Addition))
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalBinary(params, "a", "b", operator.MustFloatArithmeticOperator(operator.Subtraction))
}

// Multiply multiplies a by b
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalBinary(params, "a", "b", operator.MustFloatArithmeticOperator(operator.Multiplication))
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalBinary(params, "a", "b", operator.MustFloatArithmeticOperator(operator.Division))
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalBinary(params, "base", "exponent", operator.PowerOperator{})
}

// Root calculates the index-th root of radicand
func (a *ArithmeticOps) Root(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	root, err := operator.NewRootOperator(operator.WithReciprocal(a.Reciprocal))
	if err != nil {
		return common.OperatorFailure(err)
	}
	return evalBinary(params, "radicand", "index", root)
}

// Log calculates a logarithm in an arbitrary base
func (a *ArithmeticOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalBinary(params, "base", "antilogarithm", operator.LogarithmOperator{})
}

// Abs calculates absolute value
func (a *ArithmeticOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return evalUnary(params, "x", operator.NewFloatAbsOperator())
}
