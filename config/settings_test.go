package config

import (
	"os"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Reasoning.Provider != "openai" {
		t.Errorf("expected reasoning provider 'openai', got %q", settings.Reasoning.Provider)
	}
	if settings.Speed.Provider != "gemini" {
		t.Errorf("expected speed provider 'gemini', got %q", settings.Speed.Provider)
	}
	if settings.Reasoning.Model == "" || settings.Speed.Model == "" {
		t.Error("expected default models to be filled in")
	}
	if settings.LLM.MaxTokens != 4096 {
		t.Errorf("expected default max tokens 4096, got %d", settings.LLM.MaxTokens)
	}
	if settings.Embedding.Dimension != 1536 {
		t.Errorf("expected default embedding dimension 1536, got %d", settings.Embedding.Dimension)
	}
}

func TestNewWithAlias(t *testing.T) {
	original := os.Getenv("REASONING_PROVIDER")
	os.Setenv("REASONING_PROVIDER", "claude")
	defer os.Setenv("REASONING_PROVIDER", original)

	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Reasoning.Provider != "anthropic" {
		t.Errorf("expected provider 'anthropic' (normalized from 'claude'), got %q", settings.Reasoning.Provider)
	}
}

func TestNewUnknownProvider(t *testing.T) {
	original := os.Getenv("SPEED_PROVIDER")
	os.Setenv("SPEED_PROVIDER", "unknown_provider")
	defer os.Setenv("SPEED_PROVIDER", original)

	if _, err := New(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewUnknownFallbackProvider(t *testing.T) {
	original := os.Getenv("REASONING_FALLBACK_PROVIDER")
	os.Setenv("REASONING_FALLBACK_PROVIDER", "unknown_provider")
	defer os.Setenv("REASONING_FALLBACK_PROVIDER", original)

	if _, err := New(); err == nil {
		t.Error("expected error for unknown fallback provider")
	}
}

func TestEngineTunablesFromEnv(t *testing.T) {
	originalIter := os.Getenv("MAX_TOOL_ITERATIONS")
	originalWindow := os.Getenv("HISTORY_WINDOW")
	os.Setenv("MAX_TOOL_ITERATIONS", "3")
	os.Setenv("HISTORY_WINDOW", "20")
	defer func() {
		os.Setenv("MAX_TOOL_ITERATIONS", originalIter)
		os.Setenv("HISTORY_WINDOW", originalWindow)
	}()

	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Engine.MaxToolIterations != 3 {
		t.Errorf("expected max tool iterations 3, got %d", settings.Engine.MaxToolIterations)
	}
	if settings.Engine.HistoryWindow != 20 {
		t.Errorf("expected history window 20, got %d", settings.Engine.HistoryWindow)
	}
}

func TestAPIKeyForValidProvider(t *testing.T) {
	original := os.Getenv("OPENAI_API_KEY")
	os.Setenv("OPENAI_API_KEY", "test-key")
	defer os.Setenv("OPENAI_API_KEY", original)

	key, err := APIKeyFor("openai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "test-key" {
		t.Errorf("expected 'test-key', got %q", key)
	}
}

func TestAPIKeyForMissing(t *testing.T) {
	original := os.Getenv("OPENAI_API_KEY")
	os.Unsetenv("OPENAI_API_KEY")
	defer os.Setenv("OPENAI_API_KEY", original)

	if _, err := APIKeyFor("openai"); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestAPIKeyForUnknownProvider(t *testing.T) {
	if _, err := APIKeyFor("unknown"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDefaultModelFor(t *testing.T) {
	model, err := DefaultModelFor("openai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model == "" {
		t.Error("expected non-empty model")
	}
}

func TestNewWithInvalidEnvVar(t *testing.T) {
	original := os.Getenv("LLM_MAX_TOKENS")
	os.Setenv("LLM_MAX_TOKENS", "not-a-number")
	defer os.Setenv("LLM_MAX_TOKENS", original)

	if _, err := New(); err == nil {
		t.Error("expected error for invalid LLM_MAX_TOKENS")
	}
}

func TestMustNewPanics(t *testing.T) {
	original := os.Getenv("SPEED_PROVIDER")
	os.Setenv("SPEED_PROVIDER", "unknown_provider")
	defer os.Setenv("SPEED_PROVIDER", original)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown provider")
		}
	}()
	MustNew()
}

func TestSupportedProviders(t *testing.T) {
	providers := SupportedProviders()
	if len(providers) == 0 {
		t.Error("expected at least one supported provider")
	}
}
