// Package workspace provides read-only access to workspace records:
// projects, tasks, code snippets, and docs. The schema is owned by the web
// application; this package only queries it.
package workspace

import "time"

// Task statuses.
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// Project is a workspace project.
type Project struct {
	ID          string
	Title       string
	Description string
}

// Task is a work item within a project.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      string
	UpdatedAt   time.Time
}

// Snippet is a saved code snippet within a project.
type Snippet struct {
	ID        string
	ProjectID string
	Title     string
	Language  string
	Content   string
	UpdatedAt time.Time
}

// Doc is a document within a project.
type Doc struct {
	ID        string
	ProjectID string
	Title     string
	Label     string
	Content   string
	UpdatedAt time.Time
}
