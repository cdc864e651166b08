// Package retrieval provides evidence retrieval for grounded generation:
// a store adapter over a vector index and a keyword store, multi-query
// hybrid fusion, and LLM-backed query expansion.
package retrieval

// Evidence document types.
const (
	TypeProject    = "project"
	TypeTask       = "task"
	TypeSnippet    = "snippet"
	TypeDoc        = "doc"
	TypeSummary    = "summary"
	TypeAppFeature = "app_feature"
)

// Metadata describes where an evidence document came from.
type Metadata struct {
	Type         string
	ProjectID    string
	ProjectTitle string
	Language     string
}

// Document is a retrievable unit of content. PageContent is the literal
// text the model sees; it is regenerated by an external sync process when
// the source record changes.
type Document struct {
	ID          string
	PageContent string
	Metadata    Metadata
}

// Match pairs a document with a relevance score in [0,1]. Keyword-only hits
// carry the fixed sentinel score assigned during fusion.
type Match struct {
	Document Document
	Score    float64
}

// Filters scopes a retrieval call. A zero value means global scope.
type Filters struct {
	ProjectID string
}
