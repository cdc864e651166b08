package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/workspace"
)

const (
	docLimit        = 3
	docContentLimit = 600
)

// DocsTool fetches the most recently updated docs for a project.
type DocsTool struct {
	store workspace.Store
}

// NewDocsTool creates the getDocs tool.
func NewDocsTool(store workspace.Store) *DocsTool {
	return &DocsTool{store: store}
}

// Metadata returns the tool schema.
func (t *DocsTool) Metadata() Metadata {
	return Metadata{
		Name:        "getDocs",
		Description: "Fetch up to 3 most recently updated documents in the project, optionally filtered by label.",
		Parameters: []Parameter{
			{Name: "projectId", Type: "string", Description: "Project to search in", Required: true},
			{Name: "label", Type: "string", Description: "Optional case-insensitive label filter"},
		},
	}
}

type docsArgs struct {
	ProjectID string `json:"projectId"`
	Label     string `json:"label"`
}

// Execute fetches docs and serializes them as an observation.
func (t *DocsTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var a docsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("getDocs arguments: %w", err)
	}

	docs, err := t.store.Docs(ctx, a.ProjectID, a.Label, docLimit)
	if err != nil {
		return "", fmt.Errorf("getDocs: %w", err)
	}
	if len(docs) == 0 {
		if a.Label != "" {
			return fmt.Sprintf("No docs found with label %q in this project.", a.Label), nil
		}
		return "No docs found in this project.", nil
	}

	var sb strings.Builder
	for i, d := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Doc: %s", d.Title)
		if d.Label != "" {
			fmt.Fprintf(&sb, " [%s]", d.Label)
		}
		fmt.Fprintf(&sb, "\n%s", truncate(d.Content, docContentLimit))
	}
	return sb.String(), nil
}

var _ Tool = (*DocsTool)(nil)
