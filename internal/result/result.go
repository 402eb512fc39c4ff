// Package result defines the uniform outcome shape shared by every stage of
// the dispatch pipeline: a tagged success/failure result and the closed error
// taxonomy carried by failures.
package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind classifies a dispatch failure.
type Kind string

const (
	KindUnknownTool      Kind = "unknown_tool"
	KindMissingParameter Kind = "missing_parameter"
	KindAuthRequired     Kind = "auth_required"
	KindAuthExpired      Kind = "auth_expired"
	KindNotFound         Kind = "not_found"
	KindInvalidRequest   Kind = "invalid_request"
	KindRateLimited      Kind = "rate_limited"
	KindUpstreamError    Kind = "upstream_error"
	KindProtocolError    Kind = "protocol_error"
	KindNetworkError     Kind = "network_error"
)

// Retryable reports whether a failure of this kind may succeed if the same
// call is attempted again.
func (k Kind) Retryable() bool {
	switch k {
	case KindAuthExpired, KindRateLimited, KindUpstreamError, KindNetworkError:
		return true
	default:
		return false
	}
}

// Error is a dispatch failure. It carries the failure kind, the upstream HTTP
// status when one was received, and a human-readable message. It never
// contains credential material.
type Error struct {
	Kind       Kind
	HTTPStatus int // 0 when the failure happened before or below HTTP
	RetryAfter int // seconds, from a 429 Retry-After hint; 0 if absent
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Retryable reports whether the failure is worth retrying.
func (e *Error) Retryable() bool { return e.Kind.Retryable() }

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapErr builds an Error that wraps an underlying cause.
func WrapErr(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// HTTPErrorf builds an Error tied to an upstream HTTP status.
func HTTPErrorf(kind Kind, status int, format string, args ...any) *Error {
	return &Error{Kind: kind, HTTPStatus: status, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from any error, unwrapping as needed.
// Errors that are not dispatch failures report KindProtocolError.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProtocolError
}

// AsError converts any error into a dispatch failure, passing *Error through
// unchanged and wrapping everything else under the given fallback kind.
func AsError(err error, fallback Kind) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return WrapErr(fallback, err, "%v", err)
}

// Cursor is the uniform pagination continuation token surfaced to callers.
// For offset-style endpoints it is the next start offset rendered as a
// string; for cursor-style endpoints it is the opaque upstream cursor.
type Cursor string

// Result is the uniform outcome of a tool invocation.
type Result struct {
	StatusCode int             `json:"status_code,omitempty"`
	Body       json.RawMessage `json:"body,omitempty"`
	NextCursor *Cursor         `json:"next_cursor,omitempty"`

	// Stream carries the response body of binary download tools. It is
	// mutually exclusive with Body and must be closed by the consumer.
	Stream io.ReadCloser `json:"-"`

	Err *Error `json:"-"`
}

// OK reports whether the invocation succeeded.
func (r *Result) OK() bool { return r.Err == nil }

// Success builds a successful Result.
func Success(status int, body json.RawMessage, next *Cursor) *Result {
	return &Result{StatusCode: status, Body: body, NextCursor: next}
}

// SuccessStream builds a successful Result whose body is a byte stream.
func SuccessStream(status int, stream io.ReadCloser) *Result {
	return &Result{StatusCode: status, Stream: stream}
}

// Failure builds a failed Result.
func Failure(err *Error) *Result {
	return &Result{StatusCode: err.HTTPStatus, Err: err}
}
