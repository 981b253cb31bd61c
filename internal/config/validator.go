package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "search.debounce_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidSourceKinds returns the list of valid source kinds.
// These must match source.Kinds (defined separately to keep config free of
// the index dependencies).
func ValidSourceKinds() []string {
	return []string{"memory", "index"}
}

const (
	maxDebounceMs   = 10000
	maxVisibleLimit = 50
	maxLatencyMs    = 60000
	maxPathLength   = 4096
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Search config
	errors = append(errors, c.validateSearch()...)

	// Validate Source config
	errors = append(errors, c.validateSource()...)

	// Validate Logging config
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateSearch validates the SearchConfig
func (c *Config) validateSearch() []ValidationError {
	var errors []ValidationError

	if c.Search.DebounceMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "search.debounce_ms",
			Value:   c.Search.DebounceMs,
			Message: "must be positive",
		})
	}
	if c.Search.DebounceMs > maxDebounceMs {
		errors = append(errors, ValidationError{
			Field:   "search.debounce_ms",
			Value:   c.Search.DebounceMs,
			Message: fmt.Sprintf("exceeds maximum of %d", maxDebounceMs),
		})
	}

	if c.Search.MaxVisible < 1 || c.Search.MaxVisible > maxVisibleLimit {
		errors = append(errors, ValidationError{
			Field:   "search.max_visible",
			Value:   c.Search.MaxVisible,
			Message: fmt.Sprintf("must be between 1 and %d", maxVisibleLimit),
		})
	}

	// Messages are rendered on a single line
	messages := map[string]string{
		"search.placeholder": c.Search.Placeholder,
		"search.loading_msg": c.Search.LoadingMsg,
		"search.empty_msg":   c.Search.EmptyMsg,
	}
	for _, field := range []string{"search.placeholder", "search.loading_msg", "search.empty_msg"} {
		if strings.ContainsAny(messages[field], "\r\n") {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   messages[field],
				Message: "must not contain line breaks",
			})
		}
	}

	return errors
}

// validateSource validates the SourceConfig
func (c *Config) validateSource() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidSourceKinds(), c.Source.Kind) {
		errors = append(errors, ValidationError{
			Field:   "source.kind",
			Value:   c.Source.Kind,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidSourceKinds(), ", ")),
		})
	}

	if c.Source.LatencyMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "source.latency_ms",
			Value:   c.Source.LatencyMs,
			Message: "must be non-negative",
		})
	}
	if c.Source.LatencyMs > maxLatencyMs {
		errors = append(errors, ValidationError{
			Field:   "source.latency_ms",
			Value:   c.Source.LatencyMs,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLatencyMs),
		})
	}

	if c.Source.Catalog != "" {
		path := c.Source.Catalog

		// Check for null bytes which are invalid in paths
		if strings.ContainsRune(path, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "source.catalog",
				Value:   path,
				Message: "path contains invalid null character",
			})
		}
		if len(path) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "source.catalog",
				Value:   path,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	for i, pattern := range c.Source.Exclude {
		field := fmt.Sprintf("source.exclude[%d]", i)
		if strings.TrimSpace(pattern) == "" {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   pattern,
				Message: "pattern cannot be empty",
			})
			continue
		}
		if _, err := glob.Compile(strings.ToLower(pattern)); err != nil {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	if c.Source.Watch && c.Source.Catalog == "" {
		errors = append(errors, ValidationError{
			Field:   "source.watch",
			Value:   c.Source.Watch,
			Message: "requires source.catalog to be set",
		})
	}
	if c.Source.WatchDelayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "source.watch_delay_ms",
			Value:   c.Source.WatchDelayMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if strings.ContainsRune(c.Logging.Dir, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "logging.dir",
			Value:   c.Logging.Dir,
			Message: "path contains invalid null character",
		})
	}

	return errors
}
