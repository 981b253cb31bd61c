package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// FetchError Tests
// -----------------------------------------------------------------------------

func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{
			name: "term only",
			err:  NewFetchError("an", nil),
			want: `fetch failed [term="an"]`,
		},
		{
			name: "with generation and cause",
			err:  NewFetchError("an", io.ErrUnexpectedEOF).WithGeneration(4),
			want: `fetch failed [term="an", generation=4]: unexpected EOF`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchError_Is(t *testing.T) {
	err := NewFetchError("x", io.EOF)

	if !errors.Is(err, ErrFetchFailed) {
		t.Error("errors.Is(err, ErrFetchFailed) = false, want true")
	}
	if !errors.Is(err, io.EOF) {
		t.Error("errors.Is(err, io.EOF) = false, want true")
	}
	if errors.Is(err, ErrCatalogInvalid) {
		t.Error("errors.Is(err, ErrCatalogInvalid) = true, want false")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var fetchErr *FetchError
	if !errors.As(wrapped, &fetchErr) {
		t.Fatal("errors.As failed to find FetchError")
	}
	if fetchErr.Term != "x" {
		t.Errorf("Term = %q, want %q", fetchErr.Term, "x")
	}
}

func TestFetchError_Severity(t *testing.T) {
	err := NewFetchError("x", nil)
	if err.Severity() != SeverityWarning {
		t.Errorf("default Severity() = %v, want %v", err.Severity(), SeverityWarning)
	}
	err.WithSeverity(SeverityError)
	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
}

// -----------------------------------------------------------------------------
// CatalogError Tests
// -----------------------------------------------------------------------------

func TestCatalogError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *CatalogError
		want string
	}{
		{
			name: "builtin",
			err:  NewCatalogError("", "empty catalog", nil),
			want: "catalog error [<builtin>]: empty catalog",
		},
		{
			name: "path and entry",
			err:  NewCatalogError("names.yaml", "missing name", nil).WithEntry(3),
			want: "catalog error [names.yaml:3]: missing name",
		},
		{
			name: "with cause",
			err:  NewCatalogError("names.toml", "parse failed", io.ErrUnexpectedEOF),
			want: "catalog error [names.toml]: parse failed: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogError_Is(t *testing.T) {
	err := NewCatalogError("a.yaml", "bad", io.EOF)
	if !errors.Is(err, ErrCatalogInvalid) {
		t.Error("errors.Is(err, ErrCatalogInvalid) = false, want true")
	}
	if !errors.Is(err, io.EOF) {
		t.Error("errors.Is(err, io.EOF) = false, want true")
	}
	if errors.Is(err, ErrFetchFailed) {
		t.Error("errors.Is(err, ErrFetchFailed) = true, want false")
	}
}

// -----------------------------------------------------------------------------
// Helper Tests
// -----------------------------------------------------------------------------

func TestIsCanceled(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", NewFetchError("a", context.Canceled), true},
		{"other", io.EOF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanceled(tt.err); got != tt.want {
				t.Errorf("IsCanceled(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{"nil", nil, SeverityDebug},
		{"canceled", NewFetchError("a", context.Canceled), SeverityDebug},
		{"fetch", NewFetchError("a", io.EOF), SeverityWarning},
		{"plain", io.EOF, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(io.EOF, "reading %s", "names.txt")
	if err.Error() != "reading names.txt: EOF" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
	if !errors.Is(err, io.EOF) {
		t.Error("wrapped error should match io.EOF")
	}
}
