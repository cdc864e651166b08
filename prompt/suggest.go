package prompt

import "fmt"

// Suggestions builds the system prompt for the work-item suggestion loop.
// The model explores the project with tools, then must emit only a JSON
// array of exactly 3 new items.
func Suggestions(projectTitle, projectDescription string) string {
	return fmt.Sprintf(`%s

You are suggesting new work items for the project %q.
Project description: %s

First call getExistingTasks, getSnippets, and getDocs to see what already
exists. Existing items are negative examples: never suggest duplicates or
near-duplicates of them.

When you are done gathering, respond with ONLY a JSON array of exactly 3
objects, no prose before or after:
[{"title": "...", "description": "...", "priority": "LOW" | "MEDIUM" | "HIGH", "category": "..."}]`,
		Persona, projectTitle, projectDescription)
}

// SuggestionsRecovery builds the forced-structured retry prompt used when
// the loop's final message did not parse as the expected JSON array.
const SuggestionsRecovery = "Extract the 3 work item suggestions from the conversation above as a JSON array " +
	`of objects with keys "title", "description", "priority" (LOW, MEDIUM, or HIGH), and "category". ` +
	"Respond with the JSON array only."
