// Package fleeterr defines the error taxonomy shared across usecases and
// adapters. Backend-specific failures (duplicate keys, missing rows, cancelled
// requests) are translated into these variants once, at the repository
// boundary, so call sites branch on errors.Is instead of inspecting driver
// codes.
package fleeterr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: a required field is missing or malformed. Raised before
	// any query is issued.
	ErrValidation = errors.New("validation failed")
	// ErrConflict: a uniqueness constraint was violated (duplicate
	// vehicle_number or email).
	ErrConflict = errors.New("conflict")
	// ErrNotFound: the targeted row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAborted: the request was superseded or cancelled. Never surfaced to
	// the user and must not clear already-valid state.
	ErrAborted = errors.New("aborted")
	// ErrBackend: any other failure from the data layer.
	ErrBackend = errors.New("backend failure")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Backendf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBackend, fmt.Sprintf(format, args...))
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsAborted(err error) bool    { return errors.Is(err, ErrAborted) }
func IsBackend(err error) bool    { return errors.Is(err, ErrBackend) }
