package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// OllamaProvider implements Provider using an Ollama server.
type OllamaProvider struct {
	client    *ollama.Client
	model     string
	maxTokens int
}

// NewOllamaProvider creates a new Ollama provider for baseURL, e.g. "http://localhost:11434".
func NewOllamaProvider(baseURL, model string, maxTokens int) (*OllamaProvider, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base url %q: %w", baseURL, err)
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	// The caller's context bounds each request; no client-level timeout.
	return &OllamaProvider{
		client:    ollama.NewClient(u, &http.Client{}),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (o *OllamaProvider) Name() string { return string(ProviderOllama) }

func (o *OllamaProvider) Complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": 0.3,
			"num_predict": o.maxTokens,
		},
	}

	var text strings.Builder
	err := o.client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		text.WriteString(gr.Response)
		return nil
	})
	if err != nil {
		var statusErr ollama.StatusError
		if errors.As(err, &statusErr) {
			return "", NewProviderError(o.Name(), statusErr.StatusCode, err)
		}
		return "", NewProviderError(o.Name(), 0, err)
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", NewProviderError(o.Name(), 0, ErrEmptyResponse)
	}
	return text.String(), nil
}
