// Package prompt assembles the message content for each reasoning task.
// Every function here is pure: strings in, strings out, no I/O.
package prompt

import (
	"fmt"
	"strings"

	"github.com/workbenchhq/assist/storage"
)

// Persona is the shared assistant identity used across all prompts.
const Persona = "You are Workbench Assist, a helpful AI assistant for a collaborative developer workspace. " +
	"Users organize their work into projects containing tasks, code snippets, and docs."

// NoEvidenceContext is the context string used when retrieval surfaces
// nothing above the relevance floor.
const NoEvidenceContext = "I don't have enough specific information in my records to answer this fully."

// RenderHistory renders conversation turns as alternating User:/AI: lines,
// oldest first.
func RenderHistory(turns []storage.Turn) string {
	if len(turns) == 0 {
		return "No previous conversation."
	}
	lines := make([]string, len(turns))
	for i, turn := range turns {
		speaker := "AI"
		if turn.IsUser {
			speaker = "User"
		}
		lines[i] = fmt.Sprintf("%s: %s", speaker, turn.Content)
	}
	return strings.Join(lines, "\n")
}
