package operations

import (
	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// evalBinary reads two float params and applies op
func evalBinary(params map[string]interface{}, first, second string, op operator.BinaryOperator[float64]) (*types.Result, error) {
	left, right, err := common.GetNumberPair(params, first, second)
	if err != nil {
		return common.Failure(err.Error())
	}

	v, err := op.Calculate(left, right)
	if err != nil {
		return common.OperatorFailure(err)
	}
	return common.Value(v)
}

// evalUnary reads one float param and applies op
func evalUnary(params map[string]interface{}, key string, op operator.UnaryOperator[float64]) (*types.Result, error) {
	x, ok := common.GetNumber(params, key)
	if !ok {
		return common.Failure(key + " parameter required")
	}

	v, err := op.Calculate(x)
	if err != nil {
		return common.OperatorFailure(err)
	}
	return common.Value(v)
}

func numberParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "number", Description: description, Required: true}
}
