package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/config"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/logging"
	mathprovider "github.com/GriffinCanCode/AgentOS/calculator/internal/providers/math"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/service"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
)

// App holds the wired calculator components
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Metrics  *monitoring.Metrics
	Registry *service.Registry
	Math     *mathprovider.Provider
}

// New wires config, logger, metrics, provider and registry. A nil cfg
// loads configuration from the environment.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reciprocal, err := cfg.Operators.Reciprocal()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(cfg.Metrics.Namespace)
	}

	provider := mathprovider.NewProvider(mathprovider.WithReciprocal(reciprocal))
	registry := service.NewRegistry(logger, metrics)
	if err := registry.Register(provider); err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("register math provider: %w", err)
	}

	logger.Info("calculator ready",
		zap.String("reciprocal", reciprocal.String()),
		zap.Bool("metrics", metrics != nil),
		zap.Int("tools", len(provider.Definition().Tools)),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Registry: registry,
		Math:     provider,
	}, nil
}

// Execute runs a tool through the registry
func (a *App) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	return a.Registry.Execute(ctx, toolID, params, nil)
}

// Close flushes buffered log entries
func (a *App) Close() error {
	// Sync on stderr returns EINVAL on some platforms
	_ = a.Logger.Sync()
	return nil
}
