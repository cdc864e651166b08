package retrieval

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/workbenchhq/assist/llm"
)

const maxVariations = 3

// QueryVariations asks a model for alternative phrasings of a question to
// widen retrieval recall, returning the original plus up to three
// variations. Expansion is a recall enhancement, never a hard dependency:
// any model failure degrades to the original query alone.
func QueryVariations(ctx context.Context, provider llm.Provider, query string, logger *log.Logger) []string {
	if logger == nil {
		logger = log.Default()
	}

	messages := []llm.ChatMessage{
		llm.SystemMessage("You rephrase search queries. Respond with exactly 3 alternative phrasings of the user's question, one per line, with no numbering and no commentary."),
		llm.UserMessage(fmt.Sprintf("Question: %s", query)),
	}

	resp, err := provider.Chat(ctx, messages)
	if err != nil {
		logger.Printf("query expansion failed, using original query: %v", err)
		return []string{query}
	}

	variations := []string{query}
	for _, line := range strings.Split(resp.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == query {
			continue
		}
		variations = append(variations, line)
		if len(variations) == maxVariations+1 {
			break
		}
	}

	return variations
}
