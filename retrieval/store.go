package retrieval

import "context"

// Store is the evidence store adapter: uniform read access to a vector
// similarity index and a structured keyword store. It knows nothing about
// prompts or models.
type Store interface {
	// VectorSearch runs a semantic similarity search and returns up to k
	// scored matches. When filters carry no project scope, project-scoped
	// document types (task/snippet/doc) are omitted to avoid cross-tenant
	// leakage in global queries.
	VectorSearch(ctx context.Context, query string, k int, filters Filters) ([]Match, error)

	// KeywordSearch performs case-insensitive substring matching over
	// title/description/content/label fields of the relevant record types.
	// Project-scoped record types are skipped when no project scope is given.
	KeywordSearch(ctx context.Context, query string, filters Filters) ([]Document, error)
}

// Embedder converts texts into embedding vectors for similarity search.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
