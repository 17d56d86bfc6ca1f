package tool

import (
	"fmt"
	"sort"
	"strings"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

// Tool is a pure transform: given a validated input record and a settings
// snapshot it returns derived values, or an error describing why the input
// is invalid. Implementations must be deterministic for the same input and
// settings, excluding explicitly time-based fields.
type Tool interface {
	Name() string
	Category() string
	Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error)
}

// FileTool is implemented by tools that consume file contents. Extensions
// is the accepted lowercase extension list; MaxFileSizeMB is the per-file
// ceiling enforced at the file-input boundary.
type FileTool interface {
	Tool
	Extensions() []string
	MaxFileSizeMB() int64
}

var registry = make(map[string]Tool)

// Register adds a tool to the registry. Called from init() in each tool file.
func Register(t Tool) {
	registry[t.Name()] = t
}

// Lookup returns the tool registered under name.
func Lookup(name string) (Tool, error) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return t, nil
}

// Names returns all registered tool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ------------------- Input accessors -------------------

func stringField(in model.GenericInput, key string) string {
	if v, ok := in[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return ""
}

func numField(in model.GenericInput, key string, fallback float64) float64 {
	if v, ok := in[key]; ok {
		// Inputs arriving as strings (CLI specs, query params) are coerced first
		if s, ok := v.(string); ok {
			v = utils.ParseValue(s)
		}
		if f, ok := utils.Numeric(v); ok {
			return f
		}
	}
	return fallback
}

func boolField(in model.GenericInput, key string) bool {
	if v, ok := in[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		return stringField(in, key) == "true"
	}
	return false
}

func hasField(in model.GenericInput, key string) bool {
	_, ok := in[key]
	return ok
}
