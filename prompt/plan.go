package prompt

import (
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/workspace"
)

// renderSnippets embeds linked snippets as fenced code blocks.
func renderSnippets(snippets []workspace.Snippet) string {
	if len(snippets) == 0 {
		return "No snippets are linked to this task."
	}
	parts := make([]string, len(snippets))
	for i, sn := range snippets {
		parts[i] = fmt.Sprintf("Snippet %q:\n```%s\n%s\n```", sn.Title, sn.Language, sn.Content)
	}
	return strings.Join(parts, "\n\n")
}

// ImplementationPlan builds the single-shot planning prompt for a task.
func ImplementationPlan(project workspace.Project, task workspace.Task, snippets []workspace.Snippet) string {
	return fmt.Sprintf(`%s

Write a step-by-step implementation plan for the task below. Use markdown
with numbered steps. Ground the plan in the linked snippets where relevant.

Project: %s
%s

Task: %s (status: %s)
%s

Linked snippets:
%s`, Persona, project.Title, project.Description, task.Title, task.Status, task.Description, renderSnippets(snippets))
}

// DraftChanges builds the single-shot prompt asking for concrete code
// changes against the linked snippets.
func DraftChanges(project workspace.Project, task workspace.Task, snippets []workspace.Snippet) string {
	return fmt.Sprintf(`%s

Draft the concrete code changes needed for the task below. For each linked
snippet that needs to change, show the revised code in a fenced block and
explain the change in one or two sentences. If new files are needed, propose
them with full contents.

Project: %s
%s

Task: %s (status: %s)
%s

Linked snippets:
%s`, Persona, project.Title, project.Description, task.Title, task.Status, task.Description, renderSnippets(snippets))
}
