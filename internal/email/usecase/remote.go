package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	emaildomain "maildigest-backend/internal/email/domain"
	"maildigest-backend/pkg/ai"
	"maildigest-backend/pkg/metrics"
)

const emailSeparator = "\n---\n\n"

const promptTemplate = `You are an email summarization assistant. Please analyze the following emails and provide a concise, well-organized summary. Include:

1. **Overview**: A brief summary of the total emails and main themes
2. **Priority Items**: Any urgent or important emails that need attention
3. **Action Required**: Tasks or deadlines mentioned
4. **FYI**: Informational emails that don't require immediate action

Here are the emails:

%s

Please provide a clear, actionable summary.`

// BuildPrompt renders the batch as numbered email blocks inside the
// instruction template.
func BuildPrompt(emails []emaildomain.Email) string {
	blocks := make([]string, len(emails))
	for i, e := range emails {
		blocks[i] = fmt.Sprintf("Email %d:\nFrom: %s\nSubject: %s\nDate: %s\nBody: %s\n",
			i+1, e.From, e.Subject, e.Date, e.Body)
	}
	return fmt.Sprintf(promptTemplate, strings.Join(blocks, emailSeparator))
}

// summarizeRemote runs one provider call. A non-nil error is always a
// *ai.ProviderError.
func summarizeRemote(ctx context.Context, provider ai.Provider, emails []emaildomain.Email) (string, error) {
	start := time.Now()
	text, err := provider.Complete(ctx, BuildPrompt(emails))
	if err != nil {
		metrics.RecordProviderLatency(provider.Name(), "error", time.Since(start))
		return "", ai.NewProviderError(provider.Name(), 0, err)
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordProviderLatency(provider.Name(), "error", time.Since(start))
		return "", ai.NewProviderError(provider.Name(), 0, ai.ErrEmptyResponse)
	}
	metrics.RecordProviderLatency(provider.Name(), "ok", time.Since(start))
	return text, nil
}
