package dto

import emaildomain "maildigest-backend/internal/email/domain"

type EmailInput struct {
	From    string `json:"from" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

type SummarizeRequest struct {
	Emails []EmailInput `json:"emails" binding:"required,min=1,dive"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain converts the request into a batch, preserving order.
func (r SummarizeRequest) ToDomain() []emaildomain.Email {
	emails := make([]emaildomain.Email, len(r.Emails))
	for i, e := range r.Emails {
		emails[i] = emaildomain.Email{
			From:    e.From,
			Subject: e.Subject,
			Body:    e.Body,
			Date:    e.Date,
		}
	}
	return emails
}
