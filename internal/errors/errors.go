// Package errors defines the error categories shared by every domain package.
// Use cases wrap one of the categories so the HTTP layer can pick a status code
// without knowing about storage or validation details.
package errors

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the store rejected the write because of existing data.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or wrong credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is known but not allowed.
	ErrForbidden = errors.New("forbidden")

	// ErrTooManyRequests indicates the caller exceeded a rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// DomainError is a category error carrying a message that is safe to show to
// API clients.
type DomainError struct {
	Category error
	Message  string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Category }

// Define declares a domain error under category. The HTTP layer shows message
// to the client instead of the generic text for the category.
func Define(category error, message string) error {
	return &DomainError{Category: category, Message: message}
}

// Join returns an error that wraps the given errors, skipping nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
