package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/prompt"
	"github.com/workbenchhq/assist/retrieval"
	"github.com/workbenchhq/assist/storage"
)

// Result is the answer to one question.
type Result struct {
	Answer    string     `json:"answer"`
	Context   string     `json:"context"`
	Validated Validation `json:"validated"`
}

// Respond answers a question in a conversation.
//
// Routing: conversational questions get a direct speed-tier reply with no
// retrieval; project-scoped questions run the tool-calling loop; everything
// else runs hybrid search and a grounded answer. Both the question and the
// answer are recorded as conversation turns.
func (e *Engine) Respond(ctx context.Context, conversationID, question string, filters retrieval.Filters) (Result, error) {
	if strings.TrimSpace(question) == "" {
		return Result{}, errors.New("question must not be empty")
	}

	history, err := e.turns.RecentTurns(ctx, conversationID, e.historyWindow)
	if err != nil {
		return Result{}, fmt.Errorf("read conversation history: %w", err)
	}
	if err := e.turns.AppendTurn(ctx, storage.Turn{
		ConversationID: conversationID,
		Content:        question,
		IsUser:         true,
	}); err != nil {
		return Result{}, fmt.Errorf("record question: %w", err)
	}

	var result Result
	switch intent := e.classifyIntent(ctx, question); {
	case intent == IntentConversational:
		result, err = e.respondConversational(ctx, history, question)
	case intent == IntentGlobalSearch:
		result, err = e.respondWithSearch(ctx, history, question, filters)
	case filters.ProjectID != "":
		result, err = e.respondWithTools(ctx, question, filters.ProjectID)
	default:
		result, err = e.respondWithSearch(ctx, history, question, filters)
	}
	if err != nil {
		return Result{}, err
	}

	if err := e.turns.AppendTurn(ctx, storage.Turn{
		ConversationID: conversationID,
		Content:        result.Answer,
		IsUser:         false,
	}); err != nil {
		return Result{}, fmt.Errorf("record answer: %w", err)
	}
	return result, nil
}

// respondConversational handles greetings and small talk. No tools, no
// retrieval, empty context, trivially valid.
func (e *Engine) respondConversational(ctx context.Context, history []storage.Turn, question string) (Result, error) {
	p := prompt.Conversational(prompt.RenderHistory(history), question)
	resp, err := e.tiers.Speed.Chat(ctx, []llm.ChatMessage{llm.UserMessage(p)})
	if err != nil {
		return Result{}, fmt.Errorf("conversational reply: %w", err)
	}
	return Result{
		Answer:    resp.Content,
		Context:   "",
		Validated: Validation{IsValid: true},
	}, nil
}

// respondWithTools answers a project-scoped question through the tool loop.
// The evidence trail lives in the transcript, so tool-path answers skip the
// citation and validation heuristics.
func (e *Engine) respondWithTools(ctx context.Context, question, projectID string) (Result, error) {
	transcript := []llm.ChatMessage{
		llm.SystemMessage(prompt.ToolChatSystem()),
		llm.UserMessage(question),
	}

	transcript, err := e.runToolLoop(ctx, transcript, e.registry.Definitions(), projectID)
	if err != nil {
		return Result{}, err
	}

	transcript = append(transcript, llm.UserMessage(prompt.FinalAnswerInstruction))
	resp, err := e.tiers.Speed.Chat(ctx, transcript)
	if err != nil {
		return Result{}, fmt.Errorf("final answer: %w", err)
	}

	return Result{
		Answer:    resp.Content,
		Context:   "",
		Validated: Validation{IsValid: true},
	}, nil
}

// respondWithSearch answers an unscoped question with hybrid retrieval and
// a grounded prompt.
func (e *Engine) respondWithSearch(ctx context.Context, history []storage.Turn, question string, filters retrieval.Filters) (Result, error) {
	queries := retrieval.QueryVariations(ctx, e.tiers.Reasoning, question, e.logger)

	matches, err := e.searcher.HybridSearch(ctx, queries, question, filters)
	if err != nil {
		return Result{}, fmt.Errorf("hybrid search: %w", err)
	}

	contextBlock := prompt.BuildContext(matches)
	p := prompt.GroundedAnswer(contextBlock, prompt.RenderHistory(history), question)
	resp, err := e.tiers.Speed.Chat(ctx, []llm.ChatMessage{llm.UserMessage(p)})
	if err != nil {
		return Result{}, fmt.Errorf("grounded answer: %w", err)
	}

	answer := ImproveResponseWithCitations(resp.Content, matches)
	validated := ValidateResponse(answer, contextBlock)
	if validated.Warning != "" {
		e.logger.Printf("validation warning for conversation answer: %s", validated.Warning)
	}

	return Result{Answer: answer, Context: contextBlock, Validated: validated}, nil
}
