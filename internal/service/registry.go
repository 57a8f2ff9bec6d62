package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/logging"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/shared/id"
	"github.com/GriffinCanCode/AgentOS/calculator/internal/types"
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	count    int
	mu       sync.Mutex

	logger  *logging.Logger
	metrics *monitoring.Metrics
	ids     *id.Generator
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry. A nil logger discards logs
// and nil metrics record nothing.
func NewRegistry(logger *logging.Logger, metrics *monitoring.Metrics) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Registry{
		logger:  logger,
		metrics: metrics,
		ids:     id.Default(),
	}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	if _, loaded := r.services.Swap(def.ID, provider); !loaded {
		r.count++
	}
	count := r.count
	r.mu.Unlock()

	r.metrics.SetServicesRegistered(count)
	r.logger.Info("service registered",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)),
	)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.mu.Lock()
	if _, loaded := r.services.LoadAndDelete(serviceID); loaded {
		r.count--
	}
	count := r.count
	r.mu.Unlock()

	r.metrics.SetServicesRegistered(count)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services sorted by ID
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds the tools most relevant to a free-form intent. A limit
// <= 0 returns every match.
func (r *Registry) Discover(intent string, limit int) []types.Tool {
	type scoredTool struct {
		tool  types.Tool
		score float64
	}

	var results []scoredTool

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		for _, tool := range def.Tools {
			if score := calculateRelevance(intent, tool); score > 0 {
				results = append(results, scoredTool{tool: tool, score: score})
			}
		}
		return true
	})

	// Sort by score descending, then ID for stable output
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].tool.ID < results[j].tool.ID
	})

	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}

	output := make([]types.Tool, 0, limit)
	for i := 0; i < limit; i++ {
		output = append(output, results[i].tool)
	}
	return output
}

// Execute runs a service tool. A missing request ID is filled in on appCtx
// before the provider runs.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if appCtx == nil {
		appCtx = &types.Context{}
	}
	if appCtx.RequestID == "" {
		appCtx.RequestID = r.ids.GenerateWithPrefix(id.RequestPrefix)
	}
	log := r.logger.With(logging.Tool(toolID), logging.Request(appCtx.RequestID))

	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return r.rejectRoute(log, toolID, fmt.Errorf("invalid tool ID format: %s", toolID))
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		return r.rejectRoute(log, toolID, fmt.Errorf("service not found: %s", serviceID))
	}

	timer := monitoring.NewTimer(r.metrics, toolID)
	result, err := provider.Execute(ctx, toolID, params, appCtx)
	switch {
	case err != nil:
		duration := timer.Stop(monitoring.StatusError)
		r.metrics.RecordToolError(toolID, types.KindProvider)
		log.Error("tool execution failed", zap.Error(err), zap.Duration("duration", duration))
	case result == nil || !result.Success:
		duration := timer.Stop(monitoring.StatusFailure)
		kind := failureKind(result)
		r.metrics.RecordToolError(toolID, kind)
		log.Warn("tool call rejected",
			zap.String("kind", kind),
			zap.Stringp("error", resultError(result)),
			logging.Operands(params),
			zap.Duration("duration", duration),
		)
	default:
		duration := timer.Stop(monitoring.StatusSuccess)
		log.Debug("tool call completed", zap.Duration("duration", duration))
	}

	return result, err
}

// rejectRoute reports a call that never reached a provider
func (r *Registry) rejectRoute(log *zap.Logger, toolID string, err error) (*types.Result, error) {
	r.metrics.RecordToolError(toolID, types.KindRouting)
	log.Warn("tool call not routed", zap.Error(err))
	return &types.Result{
		Success: false,
		Error:   stringPtr(err.Error()),
		Data:    map[string]interface{}{"kind": types.KindRouting},
	}, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	stats := map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
	if r.metrics != nil {
		snap := r.metrics.Snapshot()
		stats["total_calls"] = snap.TotalCalls
		stats["total_failures"] = snap.TotalFailures
		stats["total_errors"] = snap.TotalErrors
	}
	return stats
}

func calculateRelevance(intent string, tool types.Tool) float64 {
	score := 0.0
	padded := " " + strings.Join(words(intent), " ") + " "

	// Check tool ID suffix and name as whole words
	if i := strings.LastIndex(tool.ID, "."); i >= 0 && strings.Contains(padded, " "+tool.ID[i+1:]+" ") {
		score += 10.0
	}
	if name := strings.Join(words(tool.Name), " "); strings.Contains(padded, " "+name+" ") {
		score += 10.0
	}

	// Check description words
	for _, word := range words(tool.Description) {
		if len(word) > 3 && strings.Contains(padded, " "+word+" ") {
			score += 2.0
		}
	}

	return score
}

// words splits s into lowercase letter runs
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func failureKind(result *types.Result) string {
	if kind := result.Kind(); kind != "" {
		return kind
	}
	return types.KindInternal
}

func resultError(result *types.Result) *string {
	if result == nil {
		return nil
	}
	return result.Error
}

func stringPtr(s string) *string {
	return &s
}
