package errors

import (
	"errors"
	"fmt"
)

// Common error types for the StoryMagic wizard
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")

	// Wizard flow errors
	ErrStepNotFound    = errors.New("step not found")
	ErrNoStorySelected = errors.New("no story selected")
	ErrSubmitInFlight  = errors.New("submission already in flight")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// API gateway errors
	ErrNetwork = errors.New("network error")
	ErrStatus  = errors.New("unexpected status")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
