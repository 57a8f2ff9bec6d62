package operations

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// TrigOps handles trigonometric operations
type TrigOps struct {
	*common.MathOps
}

var trigTools = []struct {
	fn          operator.TrigFunction
	name        string
	description string
}{
	{operator.Sin, "Sine", "Calculate sine (in radians)"},
	{operator.Cos, "Cosine", "Calculate cosine (in radians)"},
	{operator.Tan, "Tangent", "Calculate tangent (in radians)"},
	{operator.Sec, "Secant", "Calculate secant, 1/cos (in radians)"},
	{operator.Csc, "Cosecant", "Calculate cosecant, 1/sin (in radians)"},
	{operator.Cot, "Cotangent", "Calculate cotangent, 1/tan (in radians)"},
}

// TrigToolID returns the tool ID for fn, e.g. "math.sec"
func TrigToolID(fn operator.TrigFunction) string {
	return "math." + fn.String()
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	tools := make([]types.Tool, 0, len(trigTools))
	for _, tt := range trigTools {
		tools = append(tools, types.Tool{
			ID:          TrigToolID(tt.fn),
			Name:        tt.name,
			Description: tt.description,
			Parameters:  []types.Parameter{numberParam("x", "Angle in radians")},
			Returns:     "number",
		})
	}
	return tools
}

// Functions lists the trig functions exposed as tools
func (t *TrigOps) Functions() []operator.TrigFunction {
	fns := make([]operator.TrigFunction, 0, len(trigTools))
	for _, tt := range trigTools {
		fns = append(fns, tt.fn)
	}
	return fns
}

// Calculate evaluates fn at the "x" param
func (t *TrigOps) Calculate(ctx context.Context, fn operator.TrigFunction, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	op, err := operator.NewTrigOperator(fn, operator.WithReciprocal(t.Reciprocal))
	if err != nil {
		return common.OperatorFailure(err)
	}
	return evalUnary(params, "x", op)
}
