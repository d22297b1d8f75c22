// Package apperror defines the error taxonomy surfaced to HTTP clients.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Errors     []string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// WithCause attaches the underlying failure for logging. The cause is never
// rendered to clients.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

func (e *Error) WithDetails(details ...string) *Error {
	e.Errors = append(e.Errors, details...)
	return e
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, StatusCode: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, StatusCode: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, StatusCode: http.StatusForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, StatusCode: http.StatusConflict, Message: message}
}

// NotFound answers 400, not 404: clients of this API treat an unknown id the
// same as a malformed one.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, StatusCode: http.StatusBadRequest, Message: message}
}

func TooManyRequests(message string) *Error {
	return &Error{Kind: KindRateLimited, StatusCode: http.StatusTooManyRequests, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, StatusCode: http.StatusInternalServerError, Message: message}
}

// From normalizes any error into an *Error. Unknown errors become Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error").WithCause(err)
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
