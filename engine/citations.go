package engine

import (
	"strings"

	"github.com/workbenchhq/assist/retrieval"
)

// Validation is the advisory lint result attached to an answer.
type Validation struct {
	IsValid bool   `json:"isValid"`
	Warning string `json:"warning,omitempty"`
}

// elaborationPhrases suggest the model is adding options the context never
// mentioned. genericPhrases suggest a generic answer not grounded in the
// workspace at all.
var (
	elaborationPhrases = []string{"you can also", "additionally", "furthermore", "another option is"}
	genericPhrases     = []string{"typically", "usually", "in general", "most platforms"}
)

// ImproveResponseWithCitations appends a _Sources:_ line naming the record
// types the answer drew on. Skipped when no matches were used, when the
// answer already cites sources, or when the answer is an "I don't have
// information" refusal. Checking for the literal "Source:" substring makes
// the function idempotent.
func ImproveResponseWithCitations(answer string, matches []retrieval.Match) string {
	if len(matches) == 0 {
		return answer
	}
	if strings.Contains(answer, "Source:") {
		return answer
	}
	if strings.Contains(strings.ToLower(answer), "i don't have information") {
		return answer
	}

	seen := make(map[string]struct{}, len(matches))
	var types []string
	for _, m := range matches {
		t := m.Document.Metadata.Type
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	if len(types) == 0 {
		return answer
	}

	return answer + "\n\n_Sources: " + strings.Join(types, ", ") + "_"
}

// ValidateResponse lints an answer for signs of unsupported elaboration or
// generic filler. Advisory only: a warning never blocks the answer.
func ValidateResponse(answer, context string) Validation {
	lower := strings.ToLower(answer)

	for _, phrase := range elaborationPhrases {
		if strings.Contains(lower, phrase) {
			return Validation{
				IsValid: false,
				Warning: "answer may contain suggestions not present in the retrieved context (" + phrase + ")",
			}
		}
	}
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			return Validation{
				IsValid: false,
				Warning: "answer may be generic rather than grounded in workspace records (" + phrase + ")",
			}
		}
	}

	return Validation{IsValid: true}
}
