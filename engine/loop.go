package engine

import (
	"context"
	"fmt"

	"github.com/workbenchhq/assist/llm"
	"github.com/workbenchhq/assist/tools"
)

// runToolLoop drives the bounded agentic loop: invoke the tool-bound
// reasoning model with the given tool definitions, execute every tool call
// it requests, feed the observations back, repeat. Ends when the model
// stops requesting tools or after the configured iteration cap, whichever
// comes first.
//
// Recoverable tool problems (unknown name, execution failure) become error
// observations in the transcript so one bad call never fails the turn.
func (e *Engine) runToolLoop(ctx context.Context, transcript []llm.ChatMessage, defs []llm.ToolDefinition, projectID string) ([]llm.ChatMessage, error) {
	for i := 0; i < e.maxToolIterations; i++ {
		resp, err := e.tiers.Reasoning.ChatWithTools(ctx, transcript, defs)
		if err != nil {
			return transcript, fmt.Errorf("tool loop iteration %d: %w", i+1, err)
		}

		transcript = append(transcript, llm.ChatMessage{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		if len(resp.ToolCalls) == 0 {
			break
		}

		for _, call := range resp.ToolCalls {
			transcript = append(transcript, llm.ToolMessage(call.ID, e.executeCall(ctx, call, projectID)))
		}
	}

	return transcript, nil
}

// executeCall resolves and runs one requested tool, returning the
// observation text. Failures are reported as observations, not errors.
func (e *Engine) executeCall(ctx context.Context, call llm.ToolCall, projectID string) string {
	tool, ok := e.registry.Get(call.Name)
	if !ok {
		e.logger.Printf("model requested unknown tool %q", call.Name)
		return fmt.Sprintf("Error: unknown tool %q. Available tools: %v", call.Name, e.registry.Names())
	}

	args := tools.ForceProjectID(call.Arguments, projectID)
	result, err := tool.Execute(ctx, args)
	if err != nil {
		e.logger.Printf("tool %s failed: %v", call.Name, err)
		return fmt.Sprintf("Error: tool %q failed: %v", call.Name, err)
	}
	return result
}
