package prompt

import (
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/retrieval"
)

// BuildContext renders retrieval matches as a grounding context block. Each
// match gets a source header naming its record type and project, followed by
// its content. Returns NoEvidenceContext when no matches survived retrieval.
func BuildContext(matches []retrieval.Match) string {
	if len(matches) == 0 {
		return NoEvidenceContext
	}

	parts := make([]string, len(matches))
	for i, m := range matches {
		title := m.Document.Metadata.ProjectTitle
		if title == "" {
			title = "unknown project"
		}
		parts[i] = fmt.Sprintf("--- Source: Information from %s within project %q ---\n%s",
			m.Document.Metadata.Type, title, m.Document.PageContent)
	}
	return strings.Join(parts, "\n\n")
}

// GroundedAnswer builds the hybrid-search answer prompt: persona, grounding
// rules, few-shot examples, the retrieved context, the conversation history,
// and the question.
func GroundedAnswer(context, history, question string) string {
	return fmt.Sprintf(`%s

Answer the user's question using ONLY the context below. Rules:
- If the context contains the answer, give it directly and mention which source it came from.
- If the context does not contain the answer, say you don't have that information. Never fill gaps with general knowledge.
- Do not suggest alternatives or extra options the context doesn't mention.

Example 1:
Context: --- Source: Information from task within project "Shop" ---
Fix checkout timeout (IN_PROGRESS)
Question: what's happening with checkout?
Answer: There is an in-progress task "Fix checkout timeout" in the Shop project (Source: task).

Example 2:
Context: I don't have enough specific information in my records to answer this fully.
Question: how do I deploy?
Answer: I don't have information about deployment in your workspace records.

Context:
%s

Conversation so far:
%s

Question: %s`, Persona, context, history, question)
}
