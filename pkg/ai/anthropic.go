package ai

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider using Anthropic's Messages API.
type AnthropicProvider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicProvider creates a new Anthropic provider. Extra request options
// (base URL, retries) are passed through to the SDK client.
func NewAnthropicProvider(apiKey, model string, maxTokens int, opts ...option.RequestOption) *AnthropicProvider {
	if model == "" {
		model = DefaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicProvider{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

func (a *AnthropicProvider) Name() string { return string(ProviderAnthropic) }

// Complete sends prompt as a single user message and returns the first text block.
func (a *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", NewProviderError(a.Name(), apiErr.StatusCode, err)
		}
		return "", NewProviderError(a.Name(), 0, err)
	}

	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			if strings.TrimSpace(tb.Text) == "" {
				break
			}
			return tb.Text, nil
		}
	}
	return "", NewProviderError(a.Name(), 0, ErrEmptyResponse)
}
