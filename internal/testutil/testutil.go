// Package testutil provides testing utilities for searchbox tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile writes content to name inside dir, creating dir if needed, and
// returns the file path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteCatalog writes a catalog file into a fresh temporary directory and
// returns its path. The extension of name selects the catalog format.
func WriteCatalog(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), name, content)
}

// SetupConfigHome points XDG_CONFIG_HOME at a temporary directory and
// returns the searchbox config directory inside it.
func SetupConfigHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "searchbox")
}

// Receive waits up to timeout for a value on ch and fails the test if none
// arrives.
func Receive[T any](t *testing.T, ch <-chan T, timeout time.Duration, what string) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(timeout):
		t.Fatalf("timed out after %v waiting for %s", timeout, what)
	}
	var zero T
	return zero
}

// Never fails the test if ch yields a value within wait.
func Never[T any](t *testing.T, ch <-chan T, wait time.Duration, what string) {
	t.Helper()

	select {
	case <-ch:
		t.Fatalf("unexpected %s", what)
	case <-time.After(wait):
	}
}
