// Package config provides CLI commands for managing searchbox configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	appconfig "github.com/Iron-Ham/searchbox/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify searchbox configuration",
	Long: `View or modify searchbox configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  searchbox config set search.debounce_ms 300
  searchbox config set source.kind index
  searchbox config set tui.theme nord

Valid keys:
  search.debounce_ms    - Quiet period before a lookup, in milliseconds
  search.placeholder    - Text shown while the input is empty
  search.loading_msg    - Text shown while a lookup is pending
  search.empty_msg      - Text shown when nothing matches
  search.max_visible    - Result rows shown at once
  source.kind           - Lookup backend (memory/index)
  source.catalog        - Catalog file (empty for the built-in names)
  source.latency_ms     - Simulated lookup latency in milliseconds
  source.watch          - Reload the catalog when it changes (true/false)
  source.watch_delay_ms - Quiet period before a reload, in milliseconds
  tui.theme             - Color theme
  tui.show_help         - Show the key binding help (true/false)
  logging.enabled       - Write a log file (true/false)
  logging.level         - Log level (debug/info/warn/error)
  logging.dir           - Log directory`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/searchbox/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  searchbox config reset                    # Reset all to defaults
  searchbox config reset search.debounce_ms # Reset only the debounce`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyType is the value type of a settable key.
type keyType int

const (
	typeString keyType = iota
	typeInt
	typeBool
)

// settableKeys lists the keys accepted by 'config set' and 'config reset'.
var settableKeys = map[string]keyType{
	"search.debounce_ms":    typeInt,
	"search.placeholder":    typeString,
	"search.loading_msg":    typeString,
	"search.empty_msg":      typeString,
	"search.max_visible":    typeInt,
	"source.kind":           typeString,
	"source.catalog":        typeString,
	"source.latency_ms":     typeInt,
	"source.watch":          typeBool,
	"source.watch_delay_ms": typeInt,
	"tui.theme":             typeString,
	"tui.show_help":         typeBool,
	"logging.enabled":       typeBool,
	"logging.level":         typeString,
	"logging.dir":           typeString,
}

func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"search.debounce_ms":    d.Search.DebounceMs,
		"search.placeholder":    d.Search.Placeholder,
		"search.loading_msg":    d.Search.LoadingMsg,
		"search.empty_msg":      d.Search.EmptyMsg,
		"search.max_visible":    d.Search.MaxVisible,
		"source.kind":           d.Source.Kind,
		"source.catalog":        d.Source.Catalog,
		"source.latency_ms":     d.Source.LatencyMs,
		"source.watch":          d.Source.Watch,
		"source.watch_delay_ms": d.Source.WatchDelayMs,
		"tui.theme":             d.TUI.Theme,
		"tui.show_help":         d.TUI.ShowHelp,
		"logging.enabled":       d.Logging.Enabled,
		"logging.level":         d.Logging.Level,
		"logging.dir":           d.Logging.Dir,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "search:")
	fmt.Fprintf(out, "  debounce_ms: %d\n", cfg.Search.DebounceMs)
	fmt.Fprintf(out, "  placeholder: %q\n", cfg.Search.Placeholder)
	fmt.Fprintf(out, "  loading_msg: %q\n", cfg.Search.LoadingMsg)
	fmt.Fprintf(out, "  empty_msg: %q\n", cfg.Search.EmptyMsg)
	fmt.Fprintf(out, "  max_visible: %d\n", cfg.Search.MaxVisible)

	fmt.Fprintln(out, "source:")
	fmt.Fprintf(out, "  kind: %s\n", cfg.Source.Kind)
	if cfg.Source.Catalog == "" {
		fmt.Fprintf(out, "  catalog: (built-in)\n")
	} else {
		fmt.Fprintf(out, "  catalog: %s\n", cfg.Source.Catalog)
	}
	fmt.Fprintf(out, "  latency_ms: %d\n", cfg.Source.LatencyMs)
	fmt.Fprintf(out, "  exclude: [%s]\n", strings.Join(cfg.Source.Exclude, ", "))
	fmt.Fprintf(out, "  watch: %v\n", cfg.Source.Watch)
	fmt.Fprintf(out, "  watch_delay_ms: %d\n", cfg.Source.WatchDelayMs)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  show_help: %v\n", cfg.TUI.ShowHelp)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.ResolveDir())

	return nil
}

// parseValue converts a command line value to the type of key.
func parseValue(key, value string) (any, error) {
	kt, ok := settableKeys[key]
	if !ok {
		return nil, unknownKeyError(key)
	}

	switch kt {
	case typeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case typeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, value)

	// Reject values that would leave the config invalid
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, value)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := defaultValues()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return unknownKeyError(key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// writeConfig writes the current viper settings to the active config file,
// or to the default location when none is in use.
func writeConfig() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = appconfig.ConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

const configTemplate = `# searchbox configuration

# Search box behavior
search:
  # Quiet period after the last keystroke before a lookup starts (ms)
  debounce_ms: 500
  # Text shown while the input is empty
  placeholder: "Search..."
  # Text shown while a lookup is pending
  loading_msg: "Loading..."
  # Text shown when a lookup finds nothing
  empty_msg: "No results."
  # Result rows shown at once
  max_visible: 8

# Where results come from
source:
  # Lookup backend: memory (substring scan) or index (bleve index)
  kind: memory
  # Catalog file: .yaml, .yml, .json, .toml or plain text (one name per line)
  # Leave empty to use the built-in names
  catalog: ""
  # Simulated lookup latency (ms)
  latency_ms: 500
  # Glob patterns of names to leave out, e.g. ["jo*", "*ina"]
  exclude: []
  # Reload the catalog file when it changes
  watch: false
  watch_delay_ms: 200

# Terminal UI
tui:
  # Built-in: default, monokai, dracula, nord, solarized-light, one-dark, gruvbox
  # Custom themes are read from the themes directory (searchbox config theme path)
  theme: default
  show_help: true

# Logging (the TUI owns the terminal, so logs go to a file)
logging:
  enabled: true
  # debug, info, warn or error
  level: info
  # Defaults to the logs directory next to this file
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'searchbox config set' to modify values", configFile)
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(configTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize searchbox.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: SEARCHBOX_* (e.g., SEARCHBOX_SEARCH_DEBOUNCE_MS)")
	return nil
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, strings.Join(SettableKeys(), ", "))
}

// SettableKeys returns the keys accepted by 'config set', sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
