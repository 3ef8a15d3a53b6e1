package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind classifies provider failures for logging and metrics.
type ErrorKind string

const (
	KindConnection    ErrorKind = "connection"
	KindTimeout       ErrorKind = "timeout"
	KindQuota         ErrorKind = "quota"
	KindAuth          ErrorKind = "auth"
	KindEmptyResponse ErrorKind = "empty_response"
	KindUnknown       ErrorKind = "unknown"
)

// ErrEmptyResponse is returned when the provider answered without any text payload.
var ErrEmptyResponse = errors.New("no text content in response")

// ProviderError is any failure of a remote completion call.
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider error (%s, status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider error (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError wraps err, classifying it from status code and message.
// An err that already is a *ProviderError is returned unchanged.
func NewProviderError(provider string, statusCode int, err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	kind := kindFromStatus(statusCode)
	if kind == "" {
		kind = classify(err)
	}
	return &ProviderError{Provider: provider, Kind: kind, StatusCode: statusCode, Err: err}
}

func kindFromStatus(code int) ErrorKind {
	switch {
	case code == 401 || code == 403:
		return KindAuth
	case code == 429:
		return KindQuota
	case code == 408 || code == 504:
		return KindTimeout
	case code >= 400:
		return KindUnknown
	}
	return ""
}

func classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return KindTimeout
	case isNetError(err):
		return KindConnection
	case isQuotaError(err):
		return KindQuota
	case isAuthError(err):
		return KindAuth
	case isConnectionError(err):
		return KindConnection
	}
	return KindUnknown
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

// isConnectionError checks if the error message looks like a network/connection error
func isConnectionError(err error) bool {
	return containsAny(err.Error(),
		"connection refused",
		"could not connect",
		"no such host",
		"network is unreachable",
		"connection reset",
		"dial tcp",
		"EOF",
	)
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	return containsAny(err.Error(),
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	)
}

func isAuthError(err error) bool {
	return containsAny(err.Error(),
		"401",
		"403",
		"api key",
		"api_key",
		"x-api-key",
		"unauthenticated",
		"permission denied",
	)
}

func containsAny(s string, indicators ...string) bool {
	s = strings.ToLower(s)
	for _, indicator := range indicators {
		if strings.Contains(s, strings.ToLower(indicator)) {
			return true
		}
	}
	return false
}
