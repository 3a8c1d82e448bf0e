// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

const internalErrorMessage = "Unexpected error, check server logs"

// Error is the only error type services hand back to handlers. Message is
// safe to show to callers; Err keeps the cause for logs and errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind != KindInternal {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFoundError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ConflictError(detail string, err error) *Error {
	if detail == "" {
		detail = "Record already exists"
	}
	return &Error{Kind: KindConflict, Message: detail, Err: err}
}

func ValidationError(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

func UnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func InternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: internalErrorMessage, Err: err}
}

// KindOf returns the kind of err, treating anything that is not an *Error
// as internal.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// PublicMessage returns the text that may be shown to API callers.
func PublicMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return internalErrorMessage
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
