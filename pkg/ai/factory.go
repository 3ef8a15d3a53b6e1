package ai

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider based on the settings.
// This is the factory function - switch AI provider by changing Settings.Provider.
// It returns (nil, nil) when the selected provider has no credential, which
// callers treat as "remote strategy not configured".
func NewProvider(ctx context.Context, s Settings) (Provider, error) {
	switch s.Resolve() {
	case ProviderAnthropic:
		return NewAnthropicProvider(s.AnthropicAPIKey, s.ModelName(), s.OutputBudget()), nil

	case ProviderGemini:
		p, err := NewGeminiProvider(ctx, s.GeminiAPIKey, s.ModelName(), s.OutputBudget())
		if err != nil {
			return nil, fmt.Errorf("init gemini provider: %w", err)
		}
		return p, nil

	case ProviderOllama:
		p, err := NewOllamaProvider(s.OllamaBaseURL, s.ModelName(), s.OutputBudget())
		if err != nil {
			return nil, fmt.Errorf("init ollama provider: %w", err)
		}
		return p, nil

	default:
		return nil, nil
	}
}
