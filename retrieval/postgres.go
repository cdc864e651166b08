package retrieval

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// PostgresStore implements Store over a pgvector-enabled Postgres database.
// The evidence_embeddings table is maintained by an external sync process;
// this store only reads.
type PostgresStore struct {
	pool     *pgxpool.Pool
	embedder Embedder
}

// NewPostgresStore creates an evidence store over the given pool.
func NewPostgresStore(pool *pgxpool.Pool, embedder Embedder) *PostgresStore {
	return &PostgresStore{pool: pool, embedder: embedder}
}

// VectorSearch embeds the query and runs a similarity search.
func (s *PostgresStore) VectorSearch(ctx context.Context, query string, k int, filters Filters) ([]Match, error) {
	if s.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if k <= 0 {
		k = 5
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vectors")
	}

	sql := `
        SELECT id, content, doc_type, project_id, project_title, language,
               (embedding <-> $1::vector) AS distance
        FROM evidence_embeddings`
	args := []interface{}{pgvector.NewVector(vectors[0])}

	if filters.ProjectID != "" {
		sql += ` WHERE project_id = $2`
		args = append(args, filters.ProjectID)
	} else {
		// Unscoped queries must not surface project-scoped records.
		sql += ` WHERE doc_type NOT IN ('task', 'snippet', 'doc')`
	}

	sql += fmt.Sprintf(` ORDER BY embedding <-> $1::vector LIMIT %d`, k)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("vector search query: %w", err)
	}
	defer rows.Close()

	matches := make([]Match, 0, k)
	for rows.Next() {
		var doc Document
		var language *string
		var distance float64
		if err := rows.Scan(&doc.ID, &doc.PageContent, &doc.Metadata.Type,
			&doc.Metadata.ProjectID, &doc.Metadata.ProjectTitle, &language, &distance); err != nil {
			return nil, fmt.Errorf("scan vector match: %w", err)
		}
		if language != nil {
			doc.Metadata.Language = *language
		}
		matches = append(matches, Match{Document: doc, Score: 1 / (1 + distance)})
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return matches, nil
}

// keywordTarget describes one record type searched by KeywordSearch.
type keywordTarget struct {
	docType       string
	sql           string
	projectScoped bool
}

// Substring match targets. Project-scoped targets are skipped when no
// project filter is present.
var keywordTargets = []keywordTarget{
	{
		docType: TypeProject,
		sql: `SELECT p.id, p.title || ': ' || COALESCE(p.description, ''), p.id, p.title
              FROM projects p
              WHERE p.title ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%'`,
	},
	{
		docType:       TypeTask,
		projectScoped: true,
		sql: `SELECT t.id, t.title || ': ' || COALESCE(t.description, ''), t.project_id, p.title
              FROM tasks t JOIN projects p ON p.id = t.project_id
              WHERE t.project_id = $2
                AND (t.title ILIKE '%' || $1 || '%' OR t.description ILIKE '%' || $1 || '%')`,
	},
	{
		docType:       TypeSnippet,
		projectScoped: true,
		sql: `SELECT s.id, s.title || E'\n' || s.content, s.project_id, p.title
              FROM snippets s JOIN projects p ON p.id = s.project_id
              WHERE s.project_id = $2
                AND (s.title ILIKE '%' || $1 || '%' OR s.content ILIKE '%' || $1 || '%')`,
	},
	{
		docType:       TypeDoc,
		projectScoped: true,
		sql: `SELECT d.id, d.title || E'\n' || d.content, d.project_id, p.title
              FROM docs d JOIN projects p ON p.id = d.project_id
              WHERE d.project_id = $2
                AND (d.title ILIKE '%' || $1 || '%' OR d.label ILIKE '%' || $1 || '%'
                     OR d.content ILIKE '%' || $1 || '%')`,
	},
}

// KeywordSearch runs case-insensitive substring matching across record types.
func (s *PostgresStore) KeywordSearch(ctx context.Context, query string, filters Filters) ([]Document, error) {
	if s.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	var docs []Document
	for _, target := range keywordTargets {
		if target.projectScoped && filters.ProjectID == "" {
			continue
		}

		args := []interface{}{query}
		if target.projectScoped {
			args = append(args, filters.ProjectID)
		}

		found, err := s.queryKeywordTarget(ctx, target, args)
		if err != nil {
			return docs, fmt.Errorf("keyword search %s: %w", target.docType, err)
		}
		docs = append(docs, found...)
	}

	return docs, nil
}

func (s *PostgresStore) queryKeywordTarget(ctx context.Context, target keywordTarget, args []interface{}) ([]Document, error) {
	rows, err := s.pool.Query(ctx, target.sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.PageContent,
			&doc.Metadata.ProjectID, &doc.Metadata.ProjectTitle); err != nil {
			return nil, err
		}
		doc.Metadata.Type = target.docType
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

var _ Store = (*PostgresStore)(nil)
