package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using the Google Generative AI SDK.
type GeminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, maxTokens int) (*GeminiProvider, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiProvider{client: client, model: model, maxTokens: int32(maxTokens)}, nil
}

func (g *GeminiProvider) Name() string { return string(ProviderGemini) }

func (g *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetMaxOutputTokens(g.maxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", NewProviderError(g.Name(), 0, err)
	}
	text, ok := firstGeminiText(resp)
	if !ok {
		return "", NewProviderError(g.Name(), 0, ErrEmptyResponse)
	}
	return text, nil
}

// Close releases the underlying client connection.
func (g *GeminiProvider) Close() error {
	return g.client.Close()
}

// firstGeminiText returns the first text part of the first candidate.
func firstGeminiText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			if strings.TrimSpace(string(t)) == "" {
				return "", false
			}
			return string(t), true
		}
	}
	return "", false
}
