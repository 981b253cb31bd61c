// Package cmd implements the searchbox command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cfgcmd "github.com/Iron-Ham/searchbox/internal/cmd/config"
	"github.com/Iron-Ham/searchbox/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "searchbox",
	Short: "Interactive search box with debounced lookups",
	Long: `searchbox is an interactive search box for the terminal.

As you type, input is debounced, a lookup runs against the configured data
source, and matching names are listed with the matched text highlighted.
Press enter to pick the highlighted name (or the term as typed); the value
is printed to stdout when searchbox exits.

Names come from a catalog file (YAML, JSON, TOML or plain text, one name per
line) or from the built-in demo catalog.`,
	Args:         cobra.NoArgs,
	RunE:         runSearch,
	SilenceUsage: true,
}

// Execute runs the root command. An interrupt or termination signal cancels
// the command context, which aborts a lookup in progress.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/searchbox/config.yaml)")
	flags.String("catalog", "", "catalog file to search (default is the built-in names)")
	flags.String("source", "", "lookup backend: "+strings.Join(config.ValidSourceKinds(), ", "))
	flags.Int("latency", 0, "simulated lookup latency in milliseconds")
	flags.String("theme", "", "color theme")

	bindFlags()

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(queryCmd)
	cfgcmd.Register(rootCmd)
}

// bindFlags binds the global flags to their configuration keys.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("source.catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("source.kind", flags.Lookup("source"))
	_ = viper.BindPFlag("source.latency_ms", flags.Lookup("latency"))
	_ = viper.BindPFlag("tui.theme", flags.Lookup("theme"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SEARCHBOX")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SEARCHBOX_SEARCH_DEBOUNCE_MS for search.debounce_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
