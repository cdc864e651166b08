package prompt

import "fmt"

// IntentClassification builds the classification prompt. The model must
// answer with a JSON object {intent, confidence, reasoning}.
func IntentClassification(question string) string {
	return fmt.Sprintf(`Classify the user's message into exactly one intent:

- PROJECT_QUERY: questions about a specific project's tasks, code snippets, or docs.
- GLOBAL_SEARCH: questions that span the whole workspace rather than one project's records.
- CONVERSATIONAL: greetings, thanks, small talk, or meta questions about the assistant itself.

Respond with JSON only:
{"intent": "PROJECT_QUERY" | "GLOBAL_SEARCH" | "CONVERSATIONAL", "confidence": 0.0-1.0, "reasoning": "one sentence"}

User message: %q`, question)
}
