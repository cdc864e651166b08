package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/retrieval"
)

// SearchTool runs a project-scoped semantic search over the evidence store.
type SearchTool struct {
	searcher *retrieval.Searcher
}

// NewSearchTool creates the semanticSearch tool.
func NewSearchTool(searcher *retrieval.Searcher) *SearchTool {
	return &SearchTool{searcher: searcher}
}

// Metadata returns the tool schema.
func (t *SearchTool) Metadata() Metadata {
	return Metadata{
		Name:        "semanticSearch",
		Description: "Search the project's knowledge base (tasks, snippets, docs) by meaning rather than exact text.",
		Parameters: []Parameter{
			{Name: "projectId", Type: "string", Description: "Project to search in", Required: true},
			{Name: "query", Type: "string", Description: "What to search for", Required: true},
		},
	}
}

type searchArgs struct {
	ProjectID string `json:"projectId"`
	Query     string `json:"query"`
}

// Execute runs hybrid search and formats each hit with its relevance.
func (t *SearchTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var a searchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("semanticSearch arguments: %w", err)
	}
	if a.Query == "" {
		return "No search query provided.", nil
	}

	matches, err := t.searcher.HybridSearch(ctx, []string{a.Query}, a.Query,
		retrieval.Filters{ProjectID: a.ProjectID})
	if err != nil {
		return "", fmt.Errorf("semanticSearch: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No relevant results found for %q.", a.Query), nil
	}

	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("[%s] (relevance: %.2f)\n%s",
			m.Document.Metadata.Type, m.Score, m.Document.PageContent)
	}
	return strings.Join(parts, "\n\n"), nil
}

var _ Tool = (*SearchTool)(nil)
