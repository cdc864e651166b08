package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/workspace"
)

const (
	snippetLimit        = 5
	snippetContentLimit = 600
)

// SnippetsTool fetches the most recently updated snippets for a project.
type SnippetsTool struct {
	store workspace.Store
}

// NewSnippetsTool creates the getSnippets tool.
func NewSnippetsTool(store workspace.Store) *SnippetsTool {
	return &SnippetsTool{store: store}
}

// Metadata returns the tool schema.
func (t *SnippetsTool) Metadata() Metadata {
	return Metadata{
		Name:        "getSnippets",
		Description: "Fetch up to 5 most recently updated code snippets in the project, optionally filtered by title.",
		Parameters: []Parameter{
			{Name: "projectId", Type: "string", Description: "Project to search in", Required: true},
			{Name: "title", Type: "string", Description: "Optional case-insensitive title filter"},
		},
	}
}

type snippetsArgs struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
}

// Execute fetches snippets and serializes them as an observation.
func (t *SnippetsTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var a snippetsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("getSnippets arguments: %w", err)
	}

	snippets, err := t.store.Snippets(ctx, a.ProjectID, a.Title, snippetLimit)
	if err != nil {
		return "", fmt.Errorf("getSnippets: %w", err)
	}
	if len(snippets) == 0 {
		if a.Title != "" {
			return fmt.Sprintf("No snippets found matching title %q in this project.", a.Title), nil
		}
		return "No snippets found in this project.", nil
	}

	var sb strings.Builder
	for i, sn := range snippets {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		lang := sn.Language
		if lang == "" {
			lang = "unknown"
		}
		fmt.Fprintf(&sb, "Snippet: %s (%s)\n%s", sn.Title, lang, truncate(sn.Content, snippetContentLimit))
	}
	return sb.String(), nil
}

var _ Tool = (*SnippetsTool)(nil)
