package engine

import (
	"context"

	ijson "github.com/workbenchhq/assist/internal/json"
	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/prompt"
)

// Suggestion priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// WorkItemSuggestion is one proposed work item for a project.
type WorkItemSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// SuggestWorkItems proposes new work items for a project. The model
// explores existing tasks, snippets, and docs through the tool loop, then
// emits a JSON array of suggestions.
//
// Suggestions are a best-effort enhancement: every failure path logs and
// returns an empty slice rather than an error.
func (e *Engine) SuggestWorkItems(ctx context.Context, projectID string) []WorkItemSuggestion {
	project, err := e.workspace.Project(ctx, projectID)
	if err != nil {
		e.logger.Printf("suggestions: load project %s: %v", projectID, err)
		return []WorkItemSuggestion{}
	}

	transcript := []llm.ChatMessage{
		llm.SystemMessage(prompt.Suggestions(project.Title, project.Description)),
		llm.UserMessage("Suggest 3 new work items for this project."),
	}
	transcript, err = e.runToolLoop(ctx, transcript, e.suggestionDefinitions(), projectID)
	if err != nil {
		e.logger.Printf("suggestions: tool loop: %v", err)
		return []WorkItemSuggestion{}
	}

	if suggestions := validSuggestions(parseSuggestions(lastAssistantContent(transcript))); len(suggestions) > 0 {
		return suggestions
	}

	// Direct parse failed; force a structured extraction over the full
	// transcript.
	transcript = append(transcript, llm.UserMessage(prompt.SuggestionsRecovery))
	resp, err := e.tiers.Reasoning.ChatWithFormat(ctx, transcript, llm.NewJSONObjectFormat())
	if err != nil {
		e.logger.Printf("suggestions: structured retry: %v", err)
		return []WorkItemSuggestion{}
	}
	return validSuggestions(parseSuggestions(resp.Content))
}

// suggestionTools are the tools offered to the suggestion loop. Semantic
// search is excluded: the loop enumerates existing records as negative
// examples, which the listing tools cover directly.
var suggestionTools = []string{"getDocs", "getExistingTasks", "getSnippets"}

// suggestionDefinitions returns the definitions for the suggestion loop's
// restricted tool set.
func (e *Engine) suggestionDefinitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(suggestionTools))
	for _, name := range suggestionTools {
		if tool, ok := e.registry.Get(name); ok {
			defs = append(defs, tool.Metadata().Definition())
		}
	}
	return defs
}

// parseSuggestions decodes a model response as either a bare JSON array or
// a {"suggestions": [...]} wrapper.
func parseSuggestions(content string) []WorkItemSuggestion {
	if content == "" {
		return nil
	}
	if direct, err := ijson.Unmarshal[[]WorkItemSuggestion](content); err == nil {
		return direct
	}
	wrapped, err := ijson.Unmarshal[struct {
		Suggestions []WorkItemSuggestion `json:"suggestions"`
	}](content)
	if err != nil {
		return nil
	}
	return wrapped.Suggestions
}

// validSuggestions filters out entries missing required fields or carrying
// an unknown priority. Always returns a non-nil slice.
func validSuggestions(suggestions []WorkItemSuggestion) []WorkItemSuggestion {
	valid := make([]WorkItemSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Title == "" || s.Description == "" {
			continue
		}
		switch s.Priority {
		case PriorityLow, PriorityMedium, PriorityHigh:
		default:
			continue
		}
		valid = append(valid, s)
	}
	return valid
}

// lastAssistantContent returns the content of the last assistant message in
// a transcript.
func lastAssistantContent(transcript []llm.ChatMessage) string {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role == llm.RoleAssistant && transcript[i].Content != "" {
			return transcript[i].Content
		}
	}
	return ""
}
