package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	emaildomain "maildigest-backend/internal/email/domain"
	"maildigest-backend/pkg/ai"
	"maildigest-backend/pkg/logger"
	"maildigest-backend/pkg/metrics"
)

// DefaultRemoteTimeout bounds a single provider call.
const DefaultRemoteTimeout = 30 * time.Second

// Fallback reasons, used as metric labels.
const (
	reasonOK            = "ok"
	reasonNoCredential  = "no_credential"
	reasonProviderError = "provider_error"
)

type summaryUsecase struct {
	settings ai.Settings
	provider ai.Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewSummaryUsecase creates the summarization service. provider may be nil;
// the remote strategy runs only when settings carry a credential and a
// provider is present.
func NewSummaryUsecase(settings ai.Settings, provider ai.Provider, timeout time.Duration, log *zap.Logger) SummaryUsecase {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &summaryUsecase{
		settings: settings,
		provider: provider,
		timeout:  timeout,
		logger:   log,
	}
}

func (u *summaryUsecase) RemoteEnabled() bool {
	return u.provider != nil && u.settings.Configured()
}

func (u *summaryUsecase) Summarize(ctx context.Context, emails []emaildomain.Email) (*emaildomain.EmailSummary, error) {
	if len(emails) == 0 {
		return nil, emaildomain.ErrNoEmails
	}

	if !u.RemoteEnabled() {
		metrics.IncrementSummaries(string(emaildomain.StrategyFallback), reasonNoCredential)
		return fallbackSummary(emails), nil
	}

	remoteCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := summarizeRemote(remoteCtx, u.provider, emails)
	if err == nil {
		metrics.IncrementSummaries(string(emaildomain.StrategyRemote), reasonOK)
		return &emaildomain.EmailSummary{Text: text, Strategy: emaildomain.StrategyRemote}, nil
	}

	var pe *ai.ProviderError
	if !errors.As(err, &pe) {
		pe = ai.NewProviderError(u.provider.Name(), 0, err)
	}
	logger.WithRequestID(ctx, u.logger).Warn("remote summarization failed, using fallback",
		zap.String("provider", pe.Provider),
		zap.String("kind", string(pe.Kind)),
		zap.Int("status_code", pe.StatusCode),
		zap.Int("batch_size", len(emails)),
		zap.Error(pe.Err),
	)
	metrics.IncrementProviderFailure(pe.Provider, string(pe.Kind))
	metrics.IncrementSummaries(string(emaildomain.StrategyFallback), reasonProviderError)
	return fallbackSummary(emails), nil
}

func fallbackSummary(emails []emaildomain.Email) *emaildomain.EmailSummary {
	return &emaildomain.EmailSummary{
		Text:     SummarizeFallback(emails),
		Strategy: emaildomain.StrategyFallback,
	}
}
