package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/searchbox/internal/tui"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive search box",
	Long: `Open the interactive search box. This is also what searchbox does when
run without a subcommand.

When stdout is not a terminal (for example inside $(...)), the interface is
drawn on stderr so that only the selected value reaches stdout.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Bool("alt-screen", false, "draw in the terminal's alternate screen")
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("searchbox needs an interactive terminal; use 'searchbox query <term>' for scripts")
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	loadCustomThemes(rt.logger)
	if !styles.IsValidTheme(rt.cfg.TUI.Theme) {
		rt.logger.Warn("unknown theme, using default", "theme", rt.cfg.TUI.Theme)
	}

	altScreen, _ := cmd.Flags().GetBool("alt-screen")

	var output io.Writer = os.Stdout
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		output = os.Stderr
	}

	app := tui.New(tui.Options{
		Config:    rt.cfg,
		Source:    rt.source,
		Logger:    rt.logger,
		Output:    output,
		AltScreen: altScreen,
	})

	selected, err := app.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if selected != "" {
		fmt.Fprintln(cmd.OutOrStdout(), selected)
	}
	return nil
}
