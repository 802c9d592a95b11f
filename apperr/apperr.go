// Package apperr defines the failure taxonomy used across handlers:
// validation failures, missing entities, authentication failures and
// store failures. Handlers return these instead of writing responses,
// and a single translator maps them to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAuth
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports bad, missing or out-of-range input, including
// references to entities that do not exist.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound reports a missing entity or a malformed identifier.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Auth reports bad credentials or a missing/invalid/expired token.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Store wraps a store failure. The wrapped error is kept for logging
// but never reaches the client.
func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// MessageOf returns the client-facing message of err, or fallback when
// err is not an *Error.
func MessageOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
