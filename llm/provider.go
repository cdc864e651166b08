// Package llm provides the model access layer.
//
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific error handling
package llm

import (
	"context"
)

// Provider is the abstract interface for language-model backends.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the model identifier in use.
	Model() string

	// Chat sends a chat completion request.
	Chat(ctx context.Context, messages []ChatMessage) (Response, error)

	// ChatWithFormat sends a chat completion request with a response format.
	// Providers without native structured output ignore the format; callers
	// are expected to extract JSON from the text response in that case.
	ChatWithFormat(ctx context.Context, messages []ChatMessage, format *ResponseFormat) (Response, error)

	// ChatWithTools sends a chat completion request with tool definitions.
	// The model may respond with tool calls in Response.ToolCalls.
	ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (Response, error)
}

// Tiers groups the two model tiers the engines select between.
//
// Reasoning handles structured extraction, intent classification, and
// tool-bound calls. Speed handles final free-text generation where latency
// matters more than reasoning depth.
type Tiers struct {
	Reasoning Provider
	Speed     Provider
}
