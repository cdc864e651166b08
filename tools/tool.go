// Package tools provides the tool layer for the agentic loop: named,
// schema-described callable functions a model can invoke mid-generation.
//
// Tools return a serialized text observation. "No results" is not an
// error — tools return an explanatory string instead, so the calling model
// always receives a usable observation. Errors are reserved for backend
// failures.
package tools

import (
	"context"
	"encoding/json"

	"github.com/workbenchhq/assist/llm"
)

// Parameter describes one argument in a tool's schema.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Metadata describes a tool to the model.
type Metadata struct {
	Name        string
	Description string
	Parameters  []Parameter
}

// Definition renders the metadata as an llm.ToolDefinition with a JSON
// schema parameter block.
func (m Metadata) Definition() llm.ToolDefinition {
	properties := make(map[string]interface{}, len(m.Parameters))
	var required []string
	for _, p := range m.Parameters {
		properties[p.Name] = map[string]interface{}{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return llm.ToolDefinition{
		Name:        m.Name,
		Description: m.Description,
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

// Tool is the interface all tools implement.
type Tool interface {
	// Metadata returns the tool's name, description, and argument schema.
	Metadata() Metadata

	// Execute runs the tool and returns a bounded text observation.
	Execute(ctx context.Context, args json.RawMessage) (string, error)
}

// ForceProjectID re-injects the project scope into tool arguments before
// invocation. The model may hallucinate or omit projectId; the caller's
// scope always wins.
func ForceProjectID(args json.RawMessage, projectID string) json.RawMessage {
	var m map[string]interface{}
	if err := json.Unmarshal(args, &m); err != nil || m == nil {
		m = make(map[string]interface{})
	}
	m["projectId"] = projectID
	forced, err := json.Marshal(m)
	if err != nil {
		return args
	}
	return forced
}

// truncate bounds a tool observation fragment to n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
