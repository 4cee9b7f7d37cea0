package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent extraction failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no normaliser handles a document's MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidPattern indicates a detector rule could not be compiled.
	// It is raised while building a registry and is never recovered.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrSourceUnavailable indicates a document could not be read or decoded.
	// A document that decodes but contains no text is not an error.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrUnknownSink indicates an output format with no sink implementation.
	ErrUnknownSink = errors.New("unknown output format")
)

// PatternError describes a detector that failed registry construction.
type PatternError struct {
	// Detector is the name of the offending detector.
	Detector string

	// Expr is the rule as written.
	Expr string

	// Err is the underlying compile error, if any.
	Err error
}

func (e *PatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("detector %q: %s", e.Detector, ErrInvalidPattern)
	}
	return fmt.Sprintf("detector %q: %s: %v", e.Detector, ErrInvalidPattern, e.Err)
}

// Unwrap lets errors.Is match both ErrInvalidPattern and the cause.
func (e *PatternError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidPattern}
	}
	return []error{ErrInvalidPattern, e.Err}
}
