// Command execution for CLI commands.
//
// Information Hiding:
// - Provider/tier construction hidden
// - Store and engine wiring hidden
// - Output formatting hidden

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workbenchhq/assist/config"
	"github.com/workbenchhq/assist/engine"
	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/retrieval"
	"github.com/workbenchhq/assist/storage"
	"github.com/workbenchhq/assist/tools"
	"github.com/workbenchhq/assist/workspace"
)

// Options holds CLI execution options.
type Options struct {
	ConversationID string
	ProjectID      string
	Verbose        bool
}

// Ask answers a question, optionally scoped to a project.
func Ask(ctx context.Context, question string, opts Options) error {
	eng, cleanup, err := buildEngine(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := eng.Respond(ctx, opts.ConversationID, question, retrieval.Filters{ProjectID: opts.ProjectID})
	if err != nil {
		return err
	}

	fmt.Println(result.Answer)
	if opts.Verbose {
		if result.Context != "" {
			fmt.Fprintf(os.Stderr, "\n--- retrieved context ---\n%s\n", result.Context)
		}
		if result.Validated.Warning != "" {
			fmt.Fprintf(os.Stderr, "\nwarning: %s\n", result.Validated.Warning)
		}
	}
	return nil
}

// Suggest prints proposed work items for a project.
func Suggest(ctx context.Context, projectID string, opts Options) error {
	eng, cleanup, err := buildEngine(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	suggestions := eng.SuggestWorkItems(ctx, projectID)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions available right now.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Printf("[%s] %s (%s)\n    %s\n", s.Priority, s.Title, s.Category, s.Description)
	}
	return nil
}

// Plan prints an implementation plan for a task.
func Plan(ctx context.Context, taskID string, opts Options) error {
	eng, cleanup, err := buildEngine(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	plan, err := eng.ImplementationPlan(ctx, taskID)
	if err != nil {
		return err
	}
	fmt.Println(plan)
	return nil
}

// Draft prints proposed code changes for a task.
func Draft(ctx context.Context, taskID string, opts Options) error {
	eng, cleanup, err := buildEngine(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	draft, err := eng.DraftChanges(ctx, taskID)
	if err != nil {
		return err
	}
	fmt.Println(draft)
	return nil
}

// Providers prints the supported provider identifiers.
func Providers() {
	fmt.Println(strings.Join(llm.NewRegistry().Names(), "\n"))
}

// buildEngine wires settings, providers, stores, and tools into an engine.
// The returned cleanup closes the database handles.
func buildEngine(ctx context.Context, opts Options) (*engine.Engine, func(), error) {
	settings, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	if settings.Database.PostgresURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(os.Stderr, "assist ", log.LstdFlags)
	}

	registry := llm.NewRegistry()
	reasoning, err := buildTier(registry, settings.Reasoning, settings.LLM)
	if err != nil {
		return nil, nil, err
	}
	speed, err := buildTier(registry, settings.Speed, settings.LLM)
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.New(ctx, settings.Database.PostgresURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	turns, err := storage.OpenSqlite(settings.Database.ConversationsPath)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	cleanup := func() {
		turns.Close()
		pool.Close()
	}

	embedKey, err := config.APIKeyFor("openai")
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("embeddings require an OpenAI key: %w", err)
	}
	embedder := retrieval.NewOpenAIEmbedder(embedKey, settings.Embedding.Model, settings.Embedding.Dimension)
	evidence := retrieval.NewPostgresStore(pool, embedder)
	searcher := retrieval.NewSearcher(evidence, retrieval.SearcherConfig{
		TopK:       settings.Retrieval.TopK,
		Threshold:  settings.Retrieval.Threshold,
		MaxResults: settings.Retrieval.MaxResults,
	}, logger)

	ws := workspace.NewPostgresStore(pool)

	toolRegistry := tools.NewRegistry()
	for _, tool := range []tools.Tool{
		tools.NewSnippetsTool(ws),
		tools.NewDocsTool(ws),
		tools.NewTasksTool(ws),
		tools.NewSearchTool(searcher),
	} {
		if err := toolRegistry.Register(tool); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	tiers := llm.Tiers{Reasoning: reasoning, Speed: speed}
	engineCfg := engine.Config{
		MaxToolIterations: settings.Engine.MaxToolIterations,
		HistoryWindow:     settings.Engine.HistoryWindow,
	}
	return engine.New(tiers, toolRegistry, searcher, ws, turns, engineCfg, logger), cleanup, nil
}

// buildTier constructs one tier's provider, wrapping it with the fallback
// decorator when a fallback provider is configured.
func buildTier(registry *llm.Registry, tier config.TierConfig, gen config.LLMConfig) (llm.Provider, error) {
	primary, err := newProvider(registry, tier.Provider, tier.Model, gen)
	if err != nil {
		return nil, err
	}
	if tier.Fallback == "" {
		return primary, nil
	}

	fallbackModel, err := config.DefaultModelFor(tier.Fallback)
	if err != nil {
		return nil, err
	}
	secondary, err := newProvider(registry, tier.Fallback, fallbackModel, gen)
	if err != nil {
		return nil, err
	}
	return llm.NewFallbackProvider(primary, secondary), nil
}

func newProvider(registry *llm.Registry, name, model string, gen config.LLMConfig) (llm.Provider, error) {
	apiKey, err := config.APIKeyFor(name)
	if err != nil {
		return nil, err
	}
	return registry.New(name, llm.Options{
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   gen.MaxTokens,
		Temperature: float32(gen.Temperature),
	})
}
