package genai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrorKind is the closed set of outcomes the pipeline distinguishes.
// Upstream SDK error shapes are messy; classification happens in exactly
// one place (Classify) so their quirks stay contained here.
type ErrorKind string

const (
	KindConfiguration   ErrorKind = "ConfigurationError"
	KindInvalidContext  ErrorKind = "InvalidContext"
	KindAuth            ErrorKind = "AuthError"
	KindRateLimited     ErrorKind = "RateLimited"
	KindContentFiltered ErrorKind = "ContentFiltered"
	KindUnknown         ErrorKind = "Unknown"
)

// Error is a classified generation failure.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the ErrorKind from any error, defaulting to Unknown.
func KindOf(err error) ErrorKind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// Classify maps an upstream failure onto the error taxonomy. It is a pure
// function of the error's message and metadata and never panics: anything
// unrecognized degrades to KindUnknown.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	statusCode := 0
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		statusCode = apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		statusCode = reqErr.HTTPStatusCode
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	kind := KindUnknown
	switch {
	case statusCode == 401 ||
		strings.Contains(msg, "API_KEY_INVALID") ||
		strings.Contains(lower, "invalid api key") ||
		strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "incorrect api key"):
		kind = KindAuth

	case statusCode == 429 ||
		strings.Contains(msg, "QUOTA_EXCEEDED") ||
		strings.Contains(msg, "429") ||
		strings.Contains(lower, "too many requests") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "quota"):
		kind = KindRateLimited

	case strings.Contains(msg, "SAFETY") ||
		strings.Contains(lower, "content_filter") ||
		strings.Contains(lower, "content filter") ||
		strings.Contains(lower, "safety settings"):
		kind = KindContentFiltered
	}

	return &Error{Kind: kind, Message: msg, StatusCode: statusCode, Cause: err}
}
