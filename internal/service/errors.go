// Package service holds the business rules between the HTTP handlers and the
// stores. Expected failures come back as *Error with a Kind the handlers map
// to an HTTP status; anything else is a fault that bubbles up to the recovery
// middleware.
package service

import "errors"

// Kind classifies an expected business failure.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

// Error is an expected, user-visible failure.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
}

func (e *Error) Error() string { return e.Message }

func Invalid(msg string, fields ...string) *Error {
	return &Error{Kind: KindInvalid, Message: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// AsError unwraps err into *Error when it is an expected failure.
func AsError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}
