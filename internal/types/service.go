package types

// Category represents service categories
type Category string

const (
	CategoryMath Category = "math"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context provides execution context for services
type Context struct {
	RequestID string  `json:"request_id,omitempty"`
	Caller    *string `json:"caller,omitempty"`
}

// Result represents a service execution result
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// Failure kinds reported in Result.Data["kind"]
const (
	KindInvalidArgument  = "invalid_argument"
	KindDivisionByZero   = "division_by_zero"
	KindUnknownOperation = "unknown_operation"
	KindInvalidParameter = "invalid_parameter"
	KindUnknownTool      = "unknown_tool"
	KindRouting          = "routing"
	KindProvider         = "provider"
	KindInternal         = "internal"
)

// Kind returns the failure kind of a failed result, or "" if none is set.
func (r *Result) Kind() string {
	if r == nil || r.Success {
		return ""
	}
	kind, _ := r.Data["kind"].(string)
	return kind
}

// Value returns the "result" entry of a successful result.
func (r *Result) Value() (interface{}, bool) {
	if r == nil || !r.Success {
		return nil, false
	}
	v, ok := r.Data["result"]
	return v, ok
}
