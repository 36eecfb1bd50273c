// Package registry holds the tool table: a plain data-driven mapping from
// tool name to handler, built once at startup. The hosting agent runtime
// dispatches invocations by name.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrDuplicateTool = errors.New("tool already registered")
)

// ArgumentError reports tool arguments that failed validation before any
// external call was made. It maps to a schema-validation failure at the
// transport layer, not to the tool's fail-soft error payload.
type ArgumentError struct {
	Details []string
}

func (e *ArgumentError) Error() string {
	return "invalid tool arguments: " + strings.Join(e.Details, "; ")
}

// NewArgumentError builds an ArgumentError from a field -> message map
func NewArgumentError(fieldErrors map[string]string) *ArgumentError {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return &ArgumentError{Details: details}
}

// Handler validates the raw JSON arguments and executes the tool,
// returning the tool's response payload
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool is one entry in the registry table
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Registry maps tool names to their handlers, preserving registration order
type Registry struct {
	tools map[string]Tool
	names []string
}

func New() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the table. Duplicate names and nil handlers are
// configuration mistakes and are rejected.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return errors.New("tool name must not be empty")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %q has no handler", tool.Name)
	}
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}

	r.tools[tool.Name] = tool
	r.names = append(r.names, tool.Name)
	return nil
}

// Get looks up a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Tools returns the registered tools in registration order
func (r *Registry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.names))
	for _, name := range r.names {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Invoke dispatches a tool call by name
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Handler(ctx, args)
}
