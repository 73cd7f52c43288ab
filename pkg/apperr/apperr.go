// Package apperr defines the error taxonomy shared by services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation           Kind = "validation"
	KindUpstreamUnavailable  Kind = "upstream_unavailable"
	KindMalformedLLMResponse Kind = "malformed_llm_response"
	KindEmptyResponse        Kind = "empty_response"
	KindRateLimited          Kind = "rate_limited"
	KindInternal             Kind = "internal"
)

// Error carries a kind, a user-facing message and the underlying cause.
// Status is the HTTP status to answer with; 0 means "derive from Kind".
type Error struct {
	Kind    Kind
	Message string
	Status  int
	// Fields holds field-level validation messages.
	Fields map[string][]string
	// Body is the raw upstream response body, if any.
	Body string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status for the error.
func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUpstreamUnavailable:
		return http.StatusBadGateway
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string, fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Upstream reports an unreachable or failing provider. status is the provider's
// HTTP status when known, 0 otherwise.
func Upstream(provider string, status int, err error) *Error {
	return &Error{
		Kind:    KindUpstreamUnavailable,
		Message: provider + " unavailable",
		Status:  upstreamStatus(status),
		Err:     err,
	}
}

func Malformed(err error) *Error {
	return &Error{Kind: KindMalformedLLMResponse, Message: "malformed llm response", Err: err}
}

var ErrEmptyResponse = &Error{Kind: KindEmptyResponse, Message: "llm returned an empty response"}

var ErrRateLimited = &Error{Kind: KindRateLimited, Message: "rate limit exceeded"}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// StatusOf maps any error to an HTTP status.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode()
	}
	return http.StatusInternalServerError
}

// upstreamStatus propagates provider 4xx/5xx statuses; anything else is a 502.
func upstreamStatus(status int) int {
	if status >= 400 && status <= 599 {
		return status
	}
	return http.StatusBadGateway
}
