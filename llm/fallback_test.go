package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// stubProvider returns canned responses and errors for testing.
type stubProvider struct {
	name     string
	response Response
	err      error
	calls    int
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return "stub-model" }

func (s *stubProvider) Chat(ctx context.Context, messages []ChatMessage) (Response, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) ChatWithFormat(ctx context.Context, messages []ChatMessage, format *ResponseFormat) (Response, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (Response, error) {
	s.calls++
	return s.response, s.err
}

func TestFallbackOnRateLimit(t *testing.T) {
	primary := &stubProvider{
		name: "primary",
		err:  &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"},
	}
	secondary := &stubProvider{
		name:     "secondary",
		response: Response{Content: "from secondary"},
	}

	fb := NewFallbackProvider(primary, secondary)
	resp, err := fb.Chat(context.Background(), []ChatMessage{UserMessage("hi")})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Content != "from secondary" {
		t.Errorf("expected secondary response, got %q", resp.Content)
	}
	if secondary.calls != 1 {
		t.Errorf("expected 1 secondary call, got %d", secondary.calls)
	}
}

func TestFallbackOnServiceUnavailable(t *testing.T) {
	primary := &stubProvider{
		name: "primary",
		err:  &openai.APIError{HTTPStatusCode: 503, Message: "unavailable"},
	}
	secondary := &stubProvider{
		name:     "secondary",
		response: Response{Content: "ok"},
	}

	fb := NewFallbackProvider(primary, secondary)
	resp, err := fb.ChatWithTools(context.Background(), []ChatMessage{UserMessage("hi")}, nil)
	if err != nil {
		t.Fatalf("ChatWithTools failed: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("expected fallback response, got %q", resp.Content)
	}
}

func TestFallbackPropagatesOtherErrors(t *testing.T) {
	authErr := &openai.APIError{HTTPStatusCode: 401, Message: "bad key"}
	primary := &stubProvider{name: "primary", err: authErr}
	secondary := &stubProvider{name: "secondary", response: Response{Content: "never"}}

	fb := NewFallbackProvider(primary, secondary)
	_, err := fb.Chat(context.Background(), []ChatMessage{UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error to propagate")
	}
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode != 401 {
		t.Errorf("expected original 401 error, got %v", err)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary should not have been called, got %d calls", secondary.calls)
	}
}

func TestFallbackBothFail(t *testing.T) {
	primary := &stubProvider{
		name: "primary",
		err:  &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"},
	}
	secondary := &stubProvider{
		name: "secondary",
		err:  errors.New("secondary down"),
	}

	fb := NewFallbackProvider(primary, secondary)
	if _, err := fb.Chat(context.Background(), []ChatMessage{UserMessage("hi")}); err == nil {
		t.Fatal("expected error when both providers fail")
	}
}
