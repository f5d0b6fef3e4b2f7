package domain

import (
	"fmt"
	"net/http"
)

// ErrorKind is the flat failure taxonomy of the translation pipeline.
type ErrorKind string

const (
	ErrAuth            ErrorKind = "auth"             // credential rejected, never retried
	ErrRateLimit       ErrorKind = "rate_limit"       // HTTP 429, never retried
	ErrNetwork         ErrorKind = "network"          // transport failure, retryable
	ErrInvalidResponse ErrorKind = "invalid_response" // malformed envelope or schema, retryable
	ErrUnknown         ErrorKind = "unknown"          // anything else
)

// ClassifiedError is the single failure value callers of the pipeline see.
// Message must never contain the bearer credential.
type ClassifiedError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int // 0 when no HTTP status applies
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Retryable reports whether the retry orchestrator may re-attempt after this
// error. Auth and rate-limit failures propagate immediately.
func (e *ClassifiedError) Retryable() bool {
	return e.Kind != ErrAuth && e.Kind != ErrRateLimit
}

func NewClassifiedError(kind ErrorKind, msg string) *ClassifiedError {
	return &ClassifiedError{Kind: kind, Message: msg}
}

// ClassifyStatus maps a non-success HTTP status to an error variant.
func ClassifyStatus(status int, msg string) *ClassifiedError {
	kind := ErrUnknown
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrAuth
	case http.StatusTooManyRequests:
		kind = ErrRateLimit
	}
	return &ClassifiedError{Kind: kind, Message: msg, StatusCode: status}
}
