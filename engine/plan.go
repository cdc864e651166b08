package engine

import (
	"context"
	"fmt"

	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/prompt"
	"github.com/workbenchhq/assist/workspace"
)

// Failure messages shown when plan or draft generation fails. These flows
// are advisory UI features, so model failures surface as text, not errors.
const (
	planFailureMessage  = "I couldn't generate an implementation plan right now. Please try again later."
	draftFailureMessage = "I couldn't draft the code changes right now. Please try again later."
)

// ImplementationPlan produces a step-by-step markdown plan for a task.
// Store failures propagate; model failures return planFailureMessage.
func (e *Engine) ImplementationPlan(ctx context.Context, taskID string) (string, error) {
	project, task, snippets, err := e.loadTaskContext(ctx, taskID)
	if err != nil {
		return "", err
	}
	return e.singleShot(ctx, prompt.ImplementationPlan(project, task, snippets), planFailureMessage), nil
}

// DraftChanges produces proposed code changes for a task. Store failures
// propagate; model failures return draftFailureMessage.
func (e *Engine) DraftChanges(ctx context.Context, taskID string) (string, error) {
	project, task, snippets, err := e.loadTaskContext(ctx, taskID)
	if err != nil {
		return "", err
	}
	return e.singleShot(ctx, prompt.DraftChanges(project, task, snippets), draftFailureMessage), nil
}

// loadTaskContext fetches the task, its project, and its linked snippets.
func (e *Engine) loadTaskContext(ctx context.Context, taskID string) (workspace.Project, workspace.Task, []workspace.Snippet, error) {
	task, err := e.workspace.Task(ctx, taskID)
	if err != nil {
		return workspace.Project{}, workspace.Task{}, nil, fmt.Errorf("load task %s: %w", taskID, err)
	}
	project, err := e.workspace.Project(ctx, task.ProjectID)
	if err != nil {
		return workspace.Project{}, workspace.Task{}, nil, fmt.Errorf("load project %s: %w", task.ProjectID, err)
	}
	snippets, err := e.workspace.TaskSnippets(ctx, taskID)
	if err != nil {
		return workspace.Project{}, workspace.Task{}, nil, fmt.Errorf("load task snippets: %w", err)
	}
	return project, task, snippets, nil
}

// singleShot runs one plain speed-tier completion, mapping model failure to
// the given fallback message.
func (e *Engine) singleShot(ctx context.Context, p, failureMessage string) string {
	resp, err := e.tiers.Speed.Chat(ctx, []llm.ChatMessage{llm.UserMessage(p)})
	if err != nil {
		e.logger.Printf("single-shot generation failed: %v", err)
		return failureMessage
	}
	return resp.Content
}
