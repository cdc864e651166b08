package retrieval

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
)

// Fusion tuning defaults.
const (
	DefaultTopK       = 5   // per-query vector search depth
	DefaultThreshold  = 0.5 // relevance floor
	DefaultMaxResults = 10  // combined result cap
	keywordScore      = 0.9 // sentinel score for keyword-only hits
	signatureLength   = 50  // content-prefix dedupe signature
)

// SearcherConfig tunes hybrid search. Zero values fall back to defaults.
type SearcherConfig struct {
	TopK       int
	Threshold  float64
	MaxResults int
}

// Searcher runs hybrid (vector + keyword) retrieval over an evidence store.
type Searcher struct {
	store  Store
	cfg    SearcherConfig
	logger *log.Logger
}

// NewSearcher creates a hybrid searcher.
func NewSearcher(store Store, cfg SearcherConfig, logger *log.Logger) *Searcher {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Searcher{store: store, cfg: cfg, logger: logger}
}

// HybridSearch fuses vector results for every query variation with one
// keyword search on the original query.
//
// Vector searches run concurrently and their hits are collected in
// completion order, so dedupe tie-breaking is non-deterministic across
// near-identical documents; duplicate signatures imply near-identical
// content, so either winner is acceptable.
//
// A single failing backend degrades the result set instead of failing the
// call; an error is returned only when every backend failed.
func (s *Searcher) HybridSearch(ctx context.Context, queries []string, originalQuery string, filters Filters) ([]Match, error) {
	if len(queries) == 0 {
		queries = []string{originalQuery}
	}

	var (
		mu         sync.Mutex
		collected  []Match
		vectorErrs int
		wg         sync.WaitGroup
	)

	for _, query := range queries {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			matches, err := s.store.VectorSearch(ctx, q, s.cfg.TopK, filters)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				vectorErrs++
				s.logger.Printf("vector search failed for %q: %v", q, err)
				return
			}
			collected = append(collected, matches...)
		}(query)
	}
	wg.Wait()

	// Dedupe by content signature; first occurrence wins.
	seen := make(map[string]struct{}, len(collected))
	matches := make([]Match, 0, len(collected))
	for _, m := range collected {
		sig := signature(m.Document.PageContent)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		matches = append(matches, m)
	}

	// Keyword search runs once on the original query only, as a recall
	// safety net for exact identifier matches that embedding similarity
	// under-ranks. Running it once bounds relational load.
	keywordDocs, keywordErr := s.store.KeywordSearch(ctx, originalQuery, filters)
	if keywordErr != nil {
		s.logger.Printf("keyword search failed for %q: %v", originalQuery, keywordErr)
	}
	if vectorErrs == len(queries) && keywordErr != nil {
		return nil, keywordErr
	}

	for _, doc := range keywordDocs {
		if containsSignature(matches, signature(doc.PageContent)) {
			continue
		}
		matches = append(matches, Match{Document: doc, Score: keywordScore})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	filtered := matches[:0]
	for _, m := range matches {
		if m.Score >= s.cfg.Threshold {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) > s.cfg.MaxResults {
		filtered = filtered[:s.cfg.MaxResults]
	}

	return filtered, nil
}

// signature returns the dedupe key for a document: its first 50 characters.
// Known weak point: false positives on documents sharing a common prefix
// (e.g. two snippets with the same import block).
func signature(content string) string {
	if len(content) > signatureLength {
		return content[:signatureLength]
	}
	return content
}

// containsSignature reports whether any collected match's content contains
// the given keyword-hit signature.
func containsSignature(matches []Match, sig string) bool {
	for _, m := range matches {
		if strings.Contains(m.Document.PageContent, sig) {
			return true
		}
	}
	return false
}
