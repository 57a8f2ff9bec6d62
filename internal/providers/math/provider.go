package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/advanced"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math/operations"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

// ServiceID is the ID under which the provider registers
const ServiceID = "math"

type handler func(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)

// Provider exposes the operators as tools
type Provider struct {
	ops *common.MathOps

	// Module instances
	arithmetic *operations.ArithmeticOps
	trig       *operations.TrigOps
	bigint     *advanced.BigIntOps

	handlers map[string]handler
}

// Option configures a Provider
type Option func(*Provider)

// WithReciprocal sets the reciprocal strategy used by root and trig tools
func WithReciprocal(r operator.Reciprocal) Option {
	return func(p *Provider) {
		p.ops.Reciprocal = r
	}
}

// NewProvider creates a modular math provider
func NewProvider(opts ...Option) *Provider {
	ops := &common.MathOps{}

	p := &Provider{
		ops:        ops,
		arithmetic: &operations.ArithmeticOps{MathOps: ops},
		trig:       &operations.TrigOps{MathOps: ops},
		bigint:     &advanced.BigIntOps{MathOps: ops},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.handlers = map[string]handler{
		// Arithmetic operations
		"math.add":      p.arithmetic.Add,
		"math.subtract": p.arithmetic.Subtract,
		"math.multiply": p.arithmetic.Multiply,
		"math.divide":   p.arithmetic.Divide,
		"math.power":    p.arithmetic.Power,
		"math.root":     p.arithmetic.Root,
		"math.log":      p.arithmetic.Log,
		"math.abs":      p.arithmetic.Abs,

		// Big integer operations
		"math.bigint.add":      p.bigint.Add,
		"math.bigint.subtract": p.bigint.Subtract,
		"math.bigint.multiply": p.bigint.Multiply,
		"math.bigint.divide":   p.bigint.Divide,
		"math.bigint.abs":      p.bigint.Abs,
	}

	// Trig operations
	for _, fn := range p.trig.Functions() {
		fn := fn
		p.handlers[operations.TrigToolID(fn)] = func(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
			return p.trig.Calculate(ctx, fn, params, appCtx)
		}
	}

	return p
}

// Reciprocal returns the configured reciprocal strategy
func (m *Provider) Reciprocal() operator.Reciprocal {
	return m.ops.Reciprocal
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.bigint.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Math Service",
		Description: "Elementary and transcendental operators over floats and arbitrary-precision integers",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"power",
			"logarithm",
			"trigonometry",
			"bigint",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h, ok := m.handlers[toolID]
	if !ok {
		return common.FailureKind(types.KindUnknownTool, fmt.Sprintf("unknown tool: %s", toolID))
	}
	return h(ctx, params, appCtx)
}
