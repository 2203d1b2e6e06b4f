// Package apperr provides the typed error taxonomy shared by every provider
// adapter. Adapters return these, the HTTP layer maps them to status codes,
// and the tool boundary branches on Kind to phrase user-facing messages.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an adapter failure.
type Kind int

const (
	// KindUnknown is the default when no kind was set.
	KindUnknown Kind = iota
	// KindAuth means no credential was configured for the provider.
	// Non-retryable; checked before any network call.
	KindAuth
	// KindNotFound means the provider matched zero properties. An expected
	// outcome, not a failure.
	KindNotFound
	// KindUpstream means a transport-level failure: non-2xx status or a
	// response body that isn't JSON. Retryable at the caller's discretion.
	KindUpstream
	// KindValidation means the input address was empty or whitespace.
	KindValidation
)

// Error is a typed adapter error. Message text never includes credential
// values; upstream errors carry the HTTP status and a bounded body prefix
// instead.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "attom.FetchProperty"
	Message string
	Err     error // underlying cause, optional
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error kind onto a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error with the given kind.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates an error with an underlying cause.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// Auth reports a missing or unusable credential.
func Auth(op, provider string) *Error {
	return New(KindAuth, op, fmt.Sprintf("no API key configured for %s", provider))
}

// NotFound reports zero matching properties for an address.
func NotFound(op, address string) *Error {
	return New(KindNotFound, op, fmt.Sprintf("no property found for address: %s", address))
}

// Upstream reports an HTTP-level failure, keeping the status and a prefix of
// the raw body for diagnosis.
func Upstream(op string, status int, bodyPrefix string) *Error {
	return New(KindUpstream, op, fmt.Sprintf("upstream status %d: %s", status, bodyPrefix))
}

// Validation reports unusable input.
func Validation(op, message string) *Error {
	return New(KindValidation, op, message)
}

// KindOf extracts the Kind from any error, KindUnknown when it isn't ours.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a zero-matches outcome.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
