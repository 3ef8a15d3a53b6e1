package usecase

import (
	"context"

	emaildomain "maildigest-backend/internal/email/domain"
)

// SummaryUsecase defines the interface for batch summarization
type SummaryUsecase interface {
	// Summarize always yields a summary for a non-empty batch. The only error
	// it returns is emaildomain.ErrNoEmails.
	Summarize(ctx context.Context, emails []emaildomain.Email) (*emaildomain.EmailSummary, error)
	// RemoteEnabled reports whether a remote provider credential is configured.
	RemoteEnabled() bool
}
