package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete searchbox configuration
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Source  SourceConfig  `mapstructure:"source"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SearchConfig controls the search box behavior
type SearchConfig struct {
	// DebounceMs is the quiet period after the last keystroke before a lookup
	// starts, in milliseconds (default: 500)
	DebounceMs int `mapstructure:"debounce_ms"`
	// Placeholder is shown while the input is empty (default: "Search...")
	Placeholder string `mapstructure:"placeholder"`
	// LoadingMsg is shown while a lookup is pending (default: "Loading...")
	LoadingMsg string `mapstructure:"loading_msg"`
	// EmptyMsg is shown when a lookup returns nothing (default: "No results.")
	EmptyMsg string `mapstructure:"empty_msg"`
	// MaxVisible limits how many results are listed at once (default: 8)
	MaxVisible int `mapstructure:"max_visible"`
}

// SourceConfig controls where results come from
type SourceConfig struct {
	// Kind selects the lookup backend: "memory" or "index" (default: "memory")
	Kind string `mapstructure:"kind"`
	// Catalog is the path to a catalog file. Empty uses the built-in names.
	// Supports ~ for home directory expansion.
	Catalog string `mapstructure:"catalog"`
	// LatencyMs delays every lookup to simulate a remote backend (default: 500)
	LatencyMs int `mapstructure:"latency_ms"`
	// Exclude lists glob patterns; matching names are left out of the catalog
	Exclude []string `mapstructure:"exclude"`
	// Watch reloads the catalog file when it changes (default: false)
	Watch bool `mapstructure:"watch"`
	// WatchDelayMs coalesces bursts of file events (default: 200)
	WatchDelayMs int `mapstructure:"watch_delay_ms"`
}

// TUIConfig controls the terminal UI appearance
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	Theme string `mapstructure:"theme"`
	// ShowHelp shows the key binding help line (default: true)
	ShowHelp bool `mapstructure:"show_help"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for searchbox.log. Empty uses {config dir}/logs.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			DebounceMs:  500,
			Placeholder: "Search...",
			LoadingMsg:  "Loading...",
			EmptyMsg:    "No results.",
			MaxVisible:  8,
		},
		Source: SourceConfig{
			Kind:         "memory",
			Catalog:      "",
			LatencyMs:    500,
			Exclude:      []string{},
			Watch:        false,
			WatchDelayMs: 200,
		},
		TUI: TUIConfig{
			Theme:    "default",
			ShowHelp: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// Debounce returns the debounce period as a time.Duration
func (c *SearchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Latency returns the simulated lookup latency as a time.Duration
func (c *SourceConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMs) * time.Millisecond
}

// WatchDelay returns the reload delay as a time.Duration
func (c *SourceConfig) WatchDelay() time.Duration {
	return time.Duration(c.WatchDelayMs) * time.Millisecond
}

// ResolveCatalog returns the catalog path with ~ expanded, or "" for the
// built-in catalog.
func (c *SourceConfig) ResolveCatalog() string {
	return expandHome(c.Catalog)
}

// ResolveDir returns the log directory, defaulting to {config dir}/logs.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}
	return expandHome(c.Dir)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Search defaults
	viper.SetDefault("search.debounce_ms", defaults.Search.DebounceMs)
	viper.SetDefault("search.placeholder", defaults.Search.Placeholder)
	viper.SetDefault("search.loading_msg", defaults.Search.LoadingMsg)
	viper.SetDefault("search.empty_msg", defaults.Search.EmptyMsg)
	viper.SetDefault("search.max_visible", defaults.Search.MaxVisible)

	// Source defaults
	viper.SetDefault("source.kind", defaults.Source.Kind)
	viper.SetDefault("source.catalog", defaults.Source.Catalog)
	viper.SetDefault("source.latency_ms", defaults.Source.LatencyMs)
	viper.SetDefault("source.exclude", defaults.Source.Exclude)
	viper.SetDefault("source.watch", defaults.Source.Watch)
	viper.SetDefault("source.watch_delay_ms", defaults.Source.WatchDelayMs)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "searchbox")
	}
	// Fall back to ~/.config/searchbox
	home, err := os.UserHomeDir()
	if err != nil {
		return ".searchbox"
	}
	return filepath.Join(home, ".config", "searchbox")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory searched for custom theme files
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}
