package ai

import (
	"context"
	"testing"
)

func TestSettings_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     ProviderType
	}{
		{"nothing configured", Settings{Provider: ProviderAuto}, ""},
		{"anthropic without key", Settings{Provider: ProviderAnthropic, GeminiAPIKey: "g"}, ""},
		{"anthropic with key", Settings{Provider: ProviderAnthropic, AnthropicAPIKey: "a"}, ProviderAnthropic},
		{"gemini with key", Settings{Provider: ProviderGemini, GeminiAPIKey: "g"}, ProviderGemini},
		{"ollama with url", Settings{Provider: ProviderOllama, OllamaBaseURL: "http://localhost:11434"}, ProviderOllama},
		{"auto prefers anthropic", Settings{AnthropicAPIKey: "a", GeminiAPIKey: "g"}, ProviderAnthropic},
		{"auto falls to gemini", Settings{Provider: ProviderAuto, GeminiAPIKey: "g", OllamaBaseURL: "http://x"}, ProviderGemini},
		{"auto falls to ollama", Settings{Provider: ProviderAuto, OllamaBaseURL: "http://x"}, ProviderOllama},
		{"case insensitive", Settings{Provider: "Anthropic", AnthropicAPIKey: "a"}, ProviderAnthropic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if got := tt.settings.Configured(); got != (tt.want != "") {
				t.Errorf("Configured() = %v", got)
			}
		})
	}
}

func TestSettings_Defaults(t *testing.T) {
	s := Settings{AnthropicAPIKey: "a"}
	if got := s.ModelName(); got != DefaultAnthropicModel {
		t.Errorf("ModelName() = %q, want %q", got, DefaultAnthropicModel)
	}
	if got := s.OutputBudget(); got != DefaultMaxTokens {
		t.Errorf("OutputBudget() = %d, want %d", got, DefaultMaxTokens)
	}

	s.Model, s.MaxTokens = "claude-custom", 256
	if s.ModelName() != "claude-custom" || s.OutputBudget() != 256 {
		t.Errorf("explicit values not honored: %q %d", s.ModelName(), s.OutputBudget())
	}
}

func TestNewProvider_NotConfigured(t *testing.T) {
	p, err := NewProvider(context.Background(), Settings{Provider: ProviderAnthropic})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("provider = %v, want nil", p)
	}
}

func TestNewProvider_Selects(t *testing.T) {
	p, err := NewProvider(context.Background(), Settings{AnthropicAPIKey: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.Name() != "anthropic" {
		t.Fatalf("provider = %v, want anthropic", p)
	}

	p, err = NewProvider(context.Background(), Settings{Provider: ProviderOllama, OllamaBaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.Name() != "ollama" {
		t.Fatalf("provider = %v, want ollama", p)
	}
}
