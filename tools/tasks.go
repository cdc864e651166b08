package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/workspace"
)

const taskLimit = 15

// TasksTool lists existing tasks for a project.
type TasksTool struct {
	store workspace.Store
}

// NewTasksTool creates the getExistingTasks tool.
func NewTasksTool(store workspace.Store) *TasksTool {
	return &TasksTool{store: store}
}

// Metadata returns the tool schema.
func (t *TasksTool) Metadata() Metadata {
	return Metadata{
		Name:        "getExistingTasks",
		Description: "Fetch up to 15 tasks in the project (title, description, status), most recent first, optionally filtered by title.",
		Parameters: []Parameter{
			{Name: "projectId", Type: "string", Description: "Project to search in", Required: true},
			{Name: "title", Type: "string", Description: "Optional case-insensitive title filter"},
		},
	}
}

type tasksArgs struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
}

// Execute lists tasks and serializes them as an observation.
func (t *TasksTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var a tasksArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("getExistingTasks arguments: %w", err)
	}

	tasks, err := t.store.Tasks(ctx, a.ProjectID, a.Title, taskLimit)
	if err != nil {
		return "", fmt.Errorf("getExistingTasks: %w", err)
	}
	if len(tasks) == 0 {
		return "No tasks found in this project.", nil
	}

	var sb strings.Builder
	for i, task := range tasks {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s [%s]", task.Title, task.Status)
		if task.Description != "" {
			fmt.Fprintf(&sb, ": %s", truncate(task.Description, 200))
		}
	}
	return sb.String(), nil
}

var _ Tool = (*TasksTool)(nil)
