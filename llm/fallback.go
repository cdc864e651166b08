// Fallback decorator.
//
// Wraps a primary and a secondary provider behind the Provider interface.
// When the primary fails with a rate-limit or service-unavailable condition
// the call is retried once on the secondary; any other error propagates
// unchanged.

package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// FallbackProvider retries on a secondary provider when the primary is
// rate-limited or unavailable.
type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

// NewFallbackProvider creates a fallback pair.
func NewFallbackProvider(primary, secondary Provider) *FallbackProvider {
	return &FallbackProvider{primary: primary, secondary: secondary}
}

// Name returns the composed provider name.
func (p *FallbackProvider) Name() string {
	return p.primary.Name() + "+" + p.secondary.Name()
}

// Model returns the primary's model identifier.
func (p *FallbackProvider) Model() string {
	return p.primary.Model()
}

// Chat sends a chat completion request with fallback.
func (p *FallbackProvider) Chat(ctx context.Context, messages []ChatMessage) (Response, error) {
	resp, err := p.primary.Chat(ctx, messages)
	if err != nil && retryable(err) {
		return p.secondary.Chat(ctx, messages)
	}
	return resp, err
}

// ChatWithFormat sends a formatted chat completion request with fallback.
func (p *FallbackProvider) ChatWithFormat(ctx context.Context, messages []ChatMessage, format *ResponseFormat) (Response, error) {
	resp, err := p.primary.ChatWithFormat(ctx, messages, format)
	if err != nil && retryable(err) {
		return p.secondary.ChatWithFormat(ctx, messages, format)
	}
	return resp, err
}

// ChatWithTools sends a tool-bound chat completion request with fallback.
func (p *FallbackProvider) ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (Response, error) {
	resp, err := p.primary.ChatWithTools(ctx, messages, tools)
	if err != nil && retryable(err) {
		return p.secondary.ChatWithTools(ctx, messages, tools)
	}
	return resp, err
}

// retryable reports whether an error is a rate-limit (429) or
// service-unavailable (503) condition from any of the supported SDKs.
func retryable(err error) bool {
	var oaiErr *openai.APIError
	if errors.As(err, &oaiErr) {
		return oaiErr.HTTPStatusCode == 429 || oaiErr.HTTPStatusCode == 503
	}

	var anthErr *anthropic.Error
	if errors.As(err, &anthErr) {
		return anthErr.StatusCode == 429 || anthErr.StatusCode == 503
	}

	var genaiErr genai.APIError
	if errors.As(err, &genaiErr) {
		return genaiErr.Code == 429 || genaiErr.Code == 503
	}

	// Some SDK paths wrap transport errors in plain strings.
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "503") ||
		strings.Contains(msg, "rate limit") || strings.Contains(msg, "overloaded")
}

var _ Provider = (*FallbackProvider)(nil)
