package workspace

import "context"

// Store is the relational-store boundary. All listing methods order by most
// recently updated first and apply case-insensitive substring filters when a
// filter string is non-empty.
type Store interface {
	// Project fetches one project by id.
	Project(ctx context.Context, id string) (Project, error)

	// Task fetches one task by id.
	Task(ctx context.Context, id string) (Task, error)

	// Tasks lists tasks for a project, optionally title-filtered.
	Tasks(ctx context.Context, projectID, titleFilter string, limit int) ([]Task, error)

	// Snippets lists snippets for a project, optionally title-filtered.
	Snippets(ctx context.Context, projectID, titleFilter string, limit int) ([]Snippet, error)

	// Docs lists docs for a project, optionally label-filtered.
	Docs(ctx context.Context, projectID, labelFilter string, limit int) ([]Doc, error)

	// TaskSnippets lists the snippets linked to a task.
	TaskSnippets(ctx context.Context, taskID string) ([]Snippet, error)
}
