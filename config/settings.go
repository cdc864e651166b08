// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Provider-specific configuration lookup

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds all application configuration.
type Settings struct {
	Reasoning TierConfig
	Speed     TierConfig
	LLM       LLMConfig
	Engine    EngineConfig
	Database  DatabaseConfig
	Embedding EmbeddingConfig
	Retrieval RetrievalConfig
}

// EngineConfig tunes the orchestration loops. Zero values use the engine
// package defaults.
type EngineConfig struct {
	MaxToolIterations int
	HistoryWindow     int
}

// TierConfig selects the provider chain for one model tier. Fallback is
// optional; when set, 429/503 failures on the primary retry there once.
type TierConfig struct {
	Provider string
	Model    string
	Fallback string
}

// LLMConfig holds generation parameters shared by all providers.
type LLMConfig struct {
	MaxTokens   uint32
	Temperature float64
}

// DatabaseConfig holds store connection settings.
type DatabaseConfig struct {
	// PostgresURL connects to the workspace schema and the pgvector
	// evidence index.
	PostgresURL string

	// ConversationsPath is the sqlite file for conversation turns.
	ConversationsPath string
}

// EmbeddingConfig holds the embedding model settings. Dimension must match
// the evidence index schema.
type EmbeddingConfig struct {
	Model     string
	Dimension int
}

// RetrievalConfig tunes hybrid search. Zero values use the retrieval
// package defaults.
type RetrievalConfig struct {
	TopK       int
	Threshold  float64
	MaxResults int
}

// providerInfo holds configuration for a specific LLM provider.
type providerInfo struct {
	defaultModel string
	apiKeyEnv    string
}

// Supported providers and their configuration.
var providers = map[string]providerInfo{
	"openai":    {"gpt-4o", "OPENAI_API_KEY"},
	"anthropic": {"claude-sonnet-4-20250514", "ANTHROPIC_API_KEY"},
	"deepseek":  {"deepseek-chat", "DEEPSEEK_API_KEY"},
	"gemini":    {"gemini-2.5-flash", "GEMINI_API_KEY"},
}

// Provider aliases map to canonical names.
var providerAliases = map[string]string{
	"claude": "anthropic",
	"google": "gemini",
	"gpt":    "openai",
}

// New loads settings from environment variables.
// Returns an error if a configured provider is unknown or a numeric
// variable contains an invalid value.
func New() (Settings, error) {
	reasoning, err := tierFromEnv("REASONING", "openai")
	if err != nil {
		return Settings{}, err
	}
	speed, err := tierFromEnv("SPEED", "gemini")
	if err != nil {
		return Settings{}, err
	}

	maxTokens, err := getEnvUint32("LLM_MAX_TOKENS", 4096)
	if err != nil {
		return Settings{}, err
	}
	temperature, err := getEnvFloat64("LLM_TEMPERATURE", 0.7)
	if err != nil {
		return Settings{}, err
	}

	maxToolIterations, err := getEnvInt("MAX_TOOL_ITERATIONS", 0)
	if err != nil {
		return Settings{}, err
	}
	historyWindow, err := getEnvInt("HISTORY_WINDOW", 0)
	if err != nil {
		return Settings{}, err
	}

	dimension, err := getEnvInt("EMBEDDING_DIMENSION", 1536)
	if err != nil {
		return Settings{}, err
	}

	topK, err := getEnvInt("RETRIEVAL_TOP_K", 0)
	if err != nil {
		return Settings{}, err
	}
	threshold, err := getEnvFloat64("RETRIEVAL_THRESHOLD", 0)
	if err != nil {
		return Settings{}, err
	}
	maxResults, err := getEnvInt("RETRIEVAL_MAX_RESULTS", 0)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Reasoning: reasoning,
		Speed:     speed,
		LLM: LLMConfig{
			MaxTokens:   maxTokens,
			Temperature: temperature,
		},
		Engine: EngineConfig{
			MaxToolIterations: maxToolIterations,
			HistoryWindow:     historyWindow,
		},
		Database: DatabaseConfig{
			PostgresURL:       os.Getenv("DATABASE_URL"),
			ConversationsPath: getEnvString("CONVERSATIONS_DB", "conversations.db"),
		},
		Embedding: EmbeddingConfig{
			Model:     getEnvString("EMBEDDING_MODEL", "text-embedding-3-small"),
			Dimension: dimension,
		},
		Retrieval: RetrievalConfig{
			TopK:       topK,
			Threshold:  threshold,
			MaxResults: maxResults,
		},
	}, nil
}

// MustNew loads settings and panics on error.
// Use this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// tierFromEnv reads one tier's provider chain from <PREFIX>_PROVIDER,
// <PREFIX>_MODEL, and <PREFIX>_FALLBACK_PROVIDER.
func tierFromEnv(prefix, defaultProvider string) (TierConfig, error) {
	provider := normalizeProvider(getEnvString(prefix+"_PROVIDER", defaultProvider))
	info, err := getProviderInfo(provider)
	if err != nil {
		return TierConfig{}, fmt.Errorf("%s_PROVIDER: %w", prefix, err)
	}

	model := os.Getenv(prefix + "_MODEL")
	if model == "" {
		model = info.defaultModel
	}

	fallback := normalizeProvider(os.Getenv(prefix + "_FALLBACK_PROVIDER"))
	if fallback != "" {
		if _, err := getProviderInfo(fallback); err != nil {
			return TierConfig{}, fmt.Errorf("%s_FALLBACK_PROVIDER: %w", prefix, err)
		}
	}

	return TierConfig{Provider: provider, Model: model, Fallback: fallback}, nil
}

// normalizeProvider converts provider aliases to canonical names.
func normalizeProvider(provider string) string {
	provider = strings.ToLower(provider)
	if canonical, ok := providerAliases[provider]; ok {
		return canonical
	}
	return provider
}

// getProviderInfo returns configuration for a provider.
func getProviderInfo(provider string) (providerInfo, error) {
	info, ok := providers[provider]
	if !ok {
		return providerInfo{}, fmt.Errorf("unknown provider: %q", provider)
	}
	return info, nil
}

// APIKeyFor returns the API key for a provider from environment variables.
func APIKeyFor(provider string) (string, error) {
	provider = normalizeProvider(provider)

	info, err := getProviderInfo(provider)
	if err != nil {
		return "", err
	}

	key := os.Getenv(info.apiKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", info.apiKeyEnv)
	}
	return key, nil
}

// DefaultModelFor returns the default model for a provider.
func DefaultModelFor(provider string) (string, error) {
	info, err := getProviderInfo(normalizeProvider(provider))
	if err != nil {
		return "", err
	}
	return info.defaultModel, nil
}

// SupportedProviders returns the list of supported provider names.
func SupportedProviders() []string {
	result := make([]string, 0, len(providers))
	for name := range providers {
		result = append(result, name)
	}
	return result
}

// Environment variable helpers with proper error handling

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvUint32(key string, defaultVal uint32) (uint32, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return uint32(i), nil
}

func getEnvFloat64(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return f, nil
}
