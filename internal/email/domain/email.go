package domain

import "errors"

// ErrNoEmails is returned for an empty or missing batch.
var ErrNoEmails = errors.New("no emails provided")

// Email is one message to be summarized.
type Email struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Date    string `json:"date"` // ISO date, not validated
}
