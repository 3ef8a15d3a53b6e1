package ai

import (
	"context"
	"strings"
)

// Provider is a remote text-completion backend.
// Implement this interface to add new AI providers (Anthropic, Gemini, Ollama, ...).
// Complete returns the first text payload of the response, or a *ProviderError.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderGemini    ProviderType = "gemini"
	ProviderOllama    ProviderType = "ollama"
	ProviderAuto      ProviderType = "auto"
)

// Default model per provider, used when Settings.Model is empty.
const (
	DefaultAnthropicModel = "claude-3-5-sonnet-20241022"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultOllamaModel    = "llama3"
	DefaultMaxTokens      = 1024
)

// Settings holds remote provider configuration. It is read-only once the
// service is constructed. An empty credential for the selected provider
// means the remote strategy is not configured.
type Settings struct {
	Provider  ProviderType
	Model     string
	MaxTokens int

	AnthropicAPIKey string
	GeminiAPIKey    string
	OllamaBaseURL   string // e.g. "http://localhost:11434"
}

// Resolve returns the concrete provider the settings select, or "" when
// nothing usable is configured.
func (s Settings) Resolve() ProviderType {
	switch ProviderType(strings.ToLower(string(s.Provider))) {
	case ProviderAnthropic:
		if s.AnthropicAPIKey != "" {
			return ProviderAnthropic
		}
	case ProviderGemini:
		if s.GeminiAPIKey != "" {
			return ProviderGemini
		}
	case ProviderOllama:
		if s.OllamaBaseURL != "" {
			return ProviderOllama
		}
	default:
		// auto: first configured provider wins
		switch {
		case s.AnthropicAPIKey != "":
			return ProviderAnthropic
		case s.GeminiAPIKey != "":
			return ProviderGemini
		case s.OllamaBaseURL != "":
			return ProviderOllama
		}
	}
	return ""
}

// Configured reports whether a remote provider credential is present.
func (s Settings) Configured() bool {
	return s.Resolve() != ""
}

// ModelName returns the configured model or the resolved provider's default.
func (s Settings) ModelName() string {
	if s.Model != "" {
		return s.Model
	}
	switch s.Resolve() {
	case ProviderAnthropic:
		return DefaultAnthropicModel
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOllama:
		return DefaultOllamaModel
	}
	return ""
}

// OutputBudget returns the max output tokens, defaulting to DefaultMaxTokens.
func (s Settings) OutputBudget() int {
	if s.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return s.MaxTokens
}
