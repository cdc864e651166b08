package prompt

import "fmt"

// ToolChatSystem builds the system prompt for the tool-calling loop.
func ToolChatSystem() string {
	return Persona + `

You can call tools to look up the user's project data. Use them before
answering: prefer getExistingTasks for task questions, getSnippets for code
questions, getDocs for documentation questions, and semanticSearch when the
question doesn't map cleanly onto one record type. Call as many tools as you
need, then answer.

Formatting rules:
- Answer in plain markdown.
- Only state facts you found in tool results or the conversation.
- If the tools returned nothing relevant, say so instead of guessing.`
}

// FinalAnswerInstruction is appended after the tool loop ends to force a
// conclusive answer from the accumulated transcript.
const FinalAnswerInstruction = "Based on everything gathered above, give your final answer to the user's question. " +
	"Do not request any more tools. If the gathered information was insufficient, say what is missing."

// Conversational builds the lightweight prompt for small talk. No tools, no
// retrieval.
func Conversational(history, question string) string {
	return fmt.Sprintf(`%s

Reply briefly and warmly. Do not invent workspace data.

Conversation so far:
%s

User: %s`, Persona, history, question)
}
