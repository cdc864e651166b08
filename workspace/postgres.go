package workspace

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store over the application's Postgres schema.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a workspace store over the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Project fetches one project by id.
func (s *PostgresStore) Project(ctx context.Context, id string) (Project, error) {
	var p Project
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, '') FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		return Project{}, fmt.Errorf("fetch project %s: %w", id, err)
	}
	return p, nil
}

// Task fetches one task by id.
func (s *PostgresStore) Task(ctx context.Context, id string) (Task, error) {
	var t Task
	err := s.pool.QueryRow(ctx,
		`SELECT id, project_id, title, COALESCE(description, ''), status, updated_at
         FROM tasks WHERE id = $1`, id).
		Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.UpdatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("fetch task %s: %w", id, err)
	}
	return t, nil
}

// Tasks lists tasks for a project, most recently updated first.
func (s *PostgresStore) Tasks(ctx context.Context, projectID, titleFilter string, limit int) ([]Task, error) {
	sql := `SELECT id, project_id, title, COALESCE(description, ''), status, updated_at
            FROM tasks WHERE project_id = $1`
	args := []interface{}{projectID}
	if titleFilter != "" {
		sql += ` AND title ILIKE '%' || $2 || '%'`
		args = append(args, titleFilter)
	}
	sql += fmt.Sprintf(` ORDER BY updated_at DESC LIMIT %d`, limit)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Task, error) {
		var t Task
		err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.UpdatedAt)
		return t, err
	})
}

// Snippets lists snippets for a project, most recently updated first.
func (s *PostgresStore) Snippets(ctx context.Context, projectID, titleFilter string, limit int) ([]Snippet, error) {
	sql := `SELECT id, project_id, title, COALESCE(language, ''), content, updated_at
            FROM snippets WHERE project_id = $1`
	args := []interface{}{projectID}
	if titleFilter != "" {
		sql += ` AND title ILIKE '%' || $2 || '%'`
		args = append(args, titleFilter)
	}
	sql += fmt.Sprintf(` ORDER BY updated_at DESC LIMIT %d`, limit)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, scanSnippet)
}

// Docs lists docs for a project, most recently updated first.
func (s *PostgresStore) Docs(ctx context.Context, projectID, labelFilter string, limit int) ([]Doc, error) {
	sql := `SELECT id, project_id, title, COALESCE(label, ''), content, updated_at
            FROM docs WHERE project_id = $1`
	args := []interface{}{projectID}
	if labelFilter != "" {
		sql += ` AND label ILIKE '%' || $2 || '%'`
		args = append(args, labelFilter)
	}
	sql += fmt.Sprintf(` ORDER BY updated_at DESC LIMIT %d`, limit)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Doc, error) {
		var d Doc
		err := row.Scan(&d.ID, &d.ProjectID, &d.Title, &d.Label, &d.Content, &d.UpdatedAt)
		return d, err
	})
}

// TaskSnippets lists snippets linked to a task through the join table.
func (s *PostgresStore) TaskSnippets(ctx context.Context, taskID string) ([]Snippet, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT s.id, s.project_id, s.title, COALESCE(s.language, ''), s.content, s.updated_at
         FROM snippets s
         JOIN task_snippets ts ON ts.snippet_id = s.id
         WHERE ts.task_id = $1
         ORDER BY s.updated_at DESC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task snippets: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, scanSnippet)
}

func scanSnippet(row pgx.CollectableRow) (Snippet, error) {
	var sn Snippet
	err := row.Scan(&sn.ID, &sn.ProjectID, &sn.Title, &sn.Language, &sn.Content, &sn.UpdatedAt)
	return sn, err
}

var _ Store = (*PostgresStore)(nil)
