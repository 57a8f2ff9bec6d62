package advanced

import (
	"context"
	"math/big"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// BigIntOps handles arbitrary-precision integer arithmetic. Operands are
// accepted as integers or base-10 strings and results are returned as
// base-10 strings so no precision is lost in transport.
type BigIntOps struct {
	*common.MathOps
}

func intParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "string", Description: description, Required: true}
}

// GetTools returns big integer tool definitions
func (b *BigIntOps) GetTools() []types.Tool {
	pair := []types.Parameter{
		intParam("a", "First integer (base-10 string)"),
		intParam("b", "Second integer (base-10 string)"),
	}

	return []types.Tool{
		{
			ID:          "math.bigint.add",
			Name:        "Big Integer Addition",
			Description: "Add two arbitrary-precision integers",
			Parameters:  pair,
			Returns:     "string",
		},
		{
			ID:          "math.bigint.subtract",
			Name:        "Big Integer Subtraction",
			Description: "Subtract b from a with arbitrary precision",
			Parameters:  pair,
			Returns:     "string",
		},
		{
			ID:          "math.bigint.multiply",
			Name:        "Big Integer Multiplication",
			Description: "Multiply two arbitrary-precision integers",
			Parameters:  pair,
			Returns:     "string",
		},
		{
			ID:          "math.bigint.divide",
			Name:        "Big Integer Division",
			Description: "Divide a by b, truncating toward zero (fails on zero divisor)",
			Parameters: []types.Parameter{
				intParam("a", "Dividend (base-10 string)"),
				intParam("b", "Divisor (base-10 string)"),
			},
			Returns: "string",
		},
		{
			ID:          "math.bigint.abs",
			Name:        "Big Integer Absolute Value",
			Description: "Get absolute value of an arbitrary-precision integer",
			Parameters:  []types.Parameter{intParam("x", "Integer (base-10 string)")},
			Returns:     "string",
		},
	}
}

// Add adds two big integers
func (b *BigIntOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return b.binary(params, operator.Addition)
}

// Subtract subtracts b from a
func (b *BigIntOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return b.binary(params, operator.Subtraction)
}

// Multiply multiplies two big integers
func (b *BigIntOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return b.binary(params, operator.Multiplication)
}

// Divide divides a by b
func (b *BigIntOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return b.binary(params, operator.Division)
}

// Abs calculates the absolute value of x
func (b *BigIntOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetBigInt(params, "x")
	if !ok {
		return common.Failure("x parameter required (integer or base-10 string)")
	}

	v, err := operator.NewBigIntAbsOperator().Calculate(x)
	if err != nil {
		return common.OperatorFailure(err)
	}
	return common.Value(v.String())
}

func (b *BigIntOps) binary(params map[string]interface{}, op operator.Operation) (*types.Result, error) {
	left, right, err := common.GetBigIntPair(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}

	var v *big.Int
	v, err = operator.MustBigIntArithmeticOperator(op).Calculate(left, right)
	if err != nil {
		return common.OperatorFailure(err)
	}
	return common.Value(v.String())
}
