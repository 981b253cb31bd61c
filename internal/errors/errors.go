// Package errors provides centralized error definitions and error handling utilities
// for searchbox. It defines sentinel errors, domain error types with context
// wrapping, and classification helpers.
//
// # Error Types
//
//   - FetchError: a data source lookup failed for a given term
//   - CatalogError: a catalog file could not be read or parsed
//
// # Usage
//
//	err := errors.NewFetchError("an", cause).WithGeneration(3)
//
//	if errors.Is(err, errors.ErrFetchFailed) { ... }
//
//	var fetchErr *errors.FetchError
//	if errors.As(err, &fetchErr) { ... }
//
//	if errors.IsCanceled(err) { ... }
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityWarning is for errors that degrade behavior but are recoverable.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrFetchFailed indicates that a data source lookup failed.
	ErrFetchFailed = New("fetch failed")
	// ErrClosed indicates that the component has been torn down.
	ErrClosed = New("closed")
	// ErrCatalogInvalid indicates that a catalog file could not be used.
	ErrCatalogInvalid = New("catalog invalid")
	// ErrSourceUnknown indicates an unsupported data source kind.
	ErrSourceUnknown = New("unknown source kind")
)

// -----------------------------------------------------------------------------
// FetchError
// -----------------------------------------------------------------------------

// FetchError describes a failed lookup for a search term.
//
// Example:
//
//	err := errors.NewFetchError("an", io.ErrUnexpectedEOF).WithGeneration(4)
//	fmt.Println(err) // "fetch failed [term=\"an\", generation=4]: unexpected EOF"
type FetchError struct {
	Term       string
	Generation uint64
	cause      error
	severity   Severity
}

// NewFetchError creates a new FetchError for the given term.
func NewFetchError(term string, cause error) *FetchError {
	return &FetchError{
		Term:     term,
		cause:    cause,
		severity: SeverityWarning,
	}
}

// WithGeneration records the request generation that failed.
func (e *FetchError) WithGeneration(gen uint64) *FetchError {
	e.Generation = gen
	return e
}

// WithSeverity sets the error severity.
func (e *FetchError) WithSeverity(s Severity) *FetchError {
	e.severity = s
	return e
}

// Severity returns the error severity.
func (e *FetchError) Severity() Severity {
	return e.severity
}

// Error returns the formatted error message.
func (e *FetchError) Error() string {
	parts := []string{fmt.Sprintf("term=%q", e.Term)}
	if e.Generation > 0 {
		parts = append(parts, fmt.Sprintf("generation=%d", e.Generation))
	}
	prefix := fmt.Sprintf("fetch failed [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.cause
}

// Is reports whether target is ErrFetchFailed, another FetchError, or matches the cause.
func (e *FetchError) Is(target error) bool {
	if target == ErrFetchFailed {
		return true
	}
	if _, ok := target.(*FetchError); ok {
		return true
	}
	return false
}

// -----------------------------------------------------------------------------
// CatalogError
// -----------------------------------------------------------------------------

// CatalogError describes a problem loading a catalog file.
type CatalogError struct {
	Path    string
	Entry   int // 1-based entry or line number, 0 when not applicable
	message string
	cause   error
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(path, message string, cause error) *CatalogError {
	return &CatalogError{
		Path:    path,
		message: message,
		cause:   cause,
	}
}

// WithEntry records the offending entry.
func (e *CatalogError) WithEntry(n int) *CatalogError {
	e.Entry = n
	return e
}

// Error returns the formatted error message.
func (e *CatalogError) Error() string {
	loc := e.Path
	if e.Entry > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Entry)
	}
	if loc == "" {
		loc = "<builtin>"
	}
	if e.cause != nil {
		return fmt.Sprintf("catalog error [%s]: %s: %v", loc, e.message, e.cause)
	}
	return fmt.Sprintf("catalog error [%s]: %s", loc, e.message)
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.cause
}

// Is reports whether target is ErrCatalogInvalid or another CatalogError.
func (e *CatalogError) Is(target error) bool {
	if target == ErrCatalogInvalid {
		return true
	}
	_, ok := target.(*CatalogError)
	return ok
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// IsCanceled returns true if err stems from context cancellation or deadline expiry.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// GetSeverity returns the severity of err, defaulting to SeverityError.
// Cancellation is always reported at debug severity.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	if IsCanceled(err) {
		return SeverityDebug
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Severity()
	}
	return SeverityError
}

// Wrap adds context to an error. Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
