package engine

import (
	"context"

	ijson "github.com/workbenchhq/assist/internal/json"
	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/prompt"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentProjectQuery   Intent = "PROJECT_QUERY"
	IntentConversational Intent = "CONVERSATIONAL"
	IntentGlobalSearch   Intent = "GLOBAL_SEARCH"
)

// confidenceFloor is the minimum classifier confidence accepted before
// falling back to the default intent.
const confidenceFloor = 0.4

type intentClassification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// classifyIntent classifies the question with the reasoning tier.
// Classification is an optimization, not a gate: any failure or low
// confidence defaults to IntentProjectQuery so the user is never blocked.
func (e *Engine) classifyIntent(ctx context.Context, question string) Intent {
	messages := []llm.ChatMessage{
		llm.UserMessage(prompt.IntentClassification(question)),
	}
	resp, err := e.tiers.Reasoning.ChatWithFormat(ctx, messages, llm.NewJSONObjectFormat())
	if err != nil {
		e.logger.Printf("intent classification failed, defaulting to %s: %v", IntentProjectQuery, err)
		return IntentProjectQuery
	}

	parsed, err := ijson.Unmarshal[intentClassification](resp.Content)
	if err != nil {
		e.logger.Printf("intent classification unparseable, defaulting to %s: %v", IntentProjectQuery, err)
		return IntentProjectQuery
	}
	if parsed.Confidence <= confidenceFloor {
		e.logger.Printf("intent confidence %.2f too low, defaulting to %s", parsed.Confidence, IntentProjectQuery)
		return IntentProjectQuery
	}

	switch Intent(parsed.Intent) {
	case IntentConversational:
		return IntentConversational
	case IntentGlobalSearch:
		return IntentGlobalSearch
	case IntentProjectQuery:
		return IntentProjectQuery
	default:
		e.logger.Printf("unknown intent %q, defaulting to %s", parsed.Intent, IntentProjectQuery)
		return IntentProjectQuery
	}
}
