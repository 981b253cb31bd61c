package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	errs := cfg.Validate()
	if len(errs) != 0 {
		t.Errorf("Default config should be valid, got %d errors: %v", len(errs), errs)
	}
}

// hasFieldError reports whether errs contains an error for field.
func hasFieldError(errs []ValidationError, field string) bool {
	for _, err := range errs {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestConfig_Validate_Search(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		field    string
		hasError bool
	}{
		{"zero debounce", func(c *Config) { c.Search.DebounceMs = 0 }, "search.debounce_ms", true},
		{"negative debounce", func(c *Config) { c.Search.DebounceMs = -5 }, "search.debounce_ms", true},
		{"excessive debounce", func(c *Config) { c.Search.DebounceMs = 20000 }, "search.debounce_ms", true},
		{"short debounce", func(c *Config) { c.Search.DebounceMs = 1 }, "search.debounce_ms", false},
		{"zero max_visible", func(c *Config) { c.Search.MaxVisible = 0 }, "search.max_visible", true},
		{"excessive max_visible", func(c *Config) { c.Search.MaxVisible = 51 }, "search.max_visible", true},
		{"max max_visible", func(c *Config) { c.Search.MaxVisible = 50 }, "search.max_visible", false},
		{"empty placeholder is valid", func(c *Config) { c.Search.Placeholder = "" }, "search.placeholder", false},
		{"multiline placeholder", func(c *Config) { c.Search.Placeholder = "a\nb" }, "search.placeholder", true},
		{"multiline loading", func(c *Config) { c.Search.LoadingMsg = "a\r\nb" }, "search.loading_msg", true},
		{"multiline empty", func(c *Config) { c.Search.EmptyMsg = "none\n" }, "search.empty_msg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()

			if got := hasFieldError(errs, tt.field); got != tt.hasError {
				t.Errorf("Validate() hasError(%s) = %v, want %v (errs: %v)", tt.field, got, tt.hasError, errs)
			}
		})
	}
}

func TestConfig_Validate_Source(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		field    string
		hasError bool
	}{
		{"memory kind", func(c *Config) { c.Source.Kind = "memory" }, "source.kind", false},
		{"index kind", func(c *Config) { c.Source.Kind = "index" }, "source.kind", false},
		{"unknown kind", func(c *Config) { c.Source.Kind = "postgres" }, "source.kind", true},
		{"empty kind", func(c *Config) { c.Source.Kind = "" }, "source.kind", true},
		{"zero latency", func(c *Config) { c.Source.LatencyMs = 0 }, "source.latency_ms", false},
		{"negative latency", func(c *Config) { c.Source.LatencyMs = -1 }, "source.latency_ms", true},
		{"excessive latency", func(c *Config) { c.Source.LatencyMs = 60001 }, "source.latency_ms", true},
		{"catalog with null", func(c *Config) { c.Source.Catalog = "names\x00.yaml" }, "source.catalog", true},
		{"catalog too long", func(c *Config) { c.Source.Catalog = strings.Repeat("a", 4097) }, "source.catalog", true},
		{"catalog path", func(c *Config) { c.Source.Catalog = "~/names.yaml" }, "source.catalog", false},
		{"valid exclude", func(c *Config) { c.Source.Exclude = []string{"jo*", "?ate"} }, "source.exclude[1]", false},
		{"empty exclude", func(c *Config) { c.Source.Exclude = []string{"a*", " "} }, "source.exclude[1]", true},
		{"invalid exclude", func(c *Config) { c.Source.Exclude = []string{"[abc"} }, "source.exclude[0]", true},
		{"watch without catalog", func(c *Config) { c.Source.Watch = true }, "source.watch", true},
		{"watch with catalog", func(c *Config) {
			c.Source.Watch = true
			c.Source.Catalog = "names.yaml"
		}, "source.watch", false},
		{"negative watch delay", func(c *Config) { c.Source.WatchDelayMs = -1 }, "source.watch_delay_ms", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()

			if got := hasFieldError(errs, tt.field); got != tt.hasError {
				t.Errorf("Validate() hasError(%s) = %v, want %v (errs: %v)", tt.field, got, tt.hasError, errs)
			}
		})
	}
}

func TestConfig_Validate_Logging(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		hasError bool
	}{
		{"debug", "debug", false},
		{"info", "info", false},
		{"warn", "warn", false},
		{"error", "error", false},
		{"empty is valid", "", false},
		{"invalid", "verbose", true},
		{"case sensitive", "INFO", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Level = tt.level
			errs := cfg.Validate()

			if got := hasFieldError(errs, "logging.level"); got != tt.hasError {
				t.Errorf("Validate() for level=%q: hasError=%v, want %v", tt.level, got, tt.hasError)
			}
		})
	}

	t.Run("dir with null", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Dir = "/tmp/\x00logs"
		if !hasFieldError(cfg.Validate(), "logging.dir") {
			t.Error("expected error for null byte in logging.dir")
		}
	})
}

func TestValidLogLevels(t *testing.T) {
	levels := ValidLogLevels()
	expected := []string{"debug", "info", "warn", "error"}

	if len(levels) != len(expected) {
		t.Fatalf("ValidLogLevels() length = %d, want %d", len(levels), len(expected))
	}
	for i, level := range expected {
		if levels[i] != level {
			t.Errorf("ValidLogLevels()[%d] = %q, want %q", i, levels[i], level)
		}
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Search.DebounceMs = 0
	cfg.Source.Kind = "nope"
	cfg.Logging.Level = "loud"

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
}
