// Package engine orchestrates answering, suggestion, and planning flows:
// intent classification, the bounded tool-calling loop, hybrid-search
// grounding, and citation/validation post-processing.
package engine

import (
	"log"

	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/retrieval"
	"github.com/workbenchhq/assist/storage"
	"github.com/workbenchhq/assist/tools"
	"github.com/workbenchhq/assist/workspace"
)

const (
	// DefaultMaxToolIterations is the hard upper bound on model invocations
	// per tool loop. The loop ends here even if the model never stops
	// requesting tools.
	DefaultMaxToolIterations = 5

	// DefaultHistoryWindow is how many recent turns feed into prompts.
	DefaultHistoryWindow = 10
)

// Config tunes engine behavior. Zero values fall back to defaults.
type Config struct {
	MaxToolIterations int
	HistoryWindow     int
}

// Engine runs the orchestration flows. Each call builds its own transcript
// and context; Engine holds no per-call mutable state, so one instance is
// safe for concurrent use.
type Engine struct {
	tiers             llm.Tiers
	registry          *tools.Registry
	searcher          *retrieval.Searcher
	workspace         workspace.Store
	turns             storage.ConversationStore
	maxToolIterations int
	historyWindow     int
	logger            *log.Logger
}

// New creates an engine. A nil logger falls back to log.Default().
func New(tiers llm.Tiers, registry *tools.Registry, searcher *retrieval.Searcher, ws workspace.Store, turns storage.ConversationStore, cfg Config, logger *log.Logger) *Engine {
	if cfg.MaxToolIterations <= 0 {
		cfg.MaxToolIterations = DefaultMaxToolIterations
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		tiers:             tiers,
		registry:          registry,
		searcher:          searcher,
		workspace:         ws,
		turns:             turns,
		maxToolIterations: cfg.MaxToolIterations,
		historyWindow:     cfg.HistoryWindow,
		logger:            logger,
	}
}
