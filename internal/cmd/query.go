package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/tui/search"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var queryCmd = &cobra.Command{
	Use:   "query <term>",
	Short: "Run one lookup and print the matching names",
	Long: `Run a single lookup against the configured source and print the matching
names, one per line, in catalog order. There is no debounce; the configured
source latency still applies (use --latency 0 to skip it).

Highlight modes:
  auto      color when stdout is a terminal, none otherwise (default)
  color     theme colors
  brackets  wrap each match in [ and ]
  none      plain names`,
	Example: `  searchbox query an
  searchbox query --highlight brackets "jo"
  searchbox query --catalog names.txt --source index ana`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

var validHighlightModes = []string{"auto", "color", "brackets", "none"}

func init() {
	queryCmd.Flags().String("highlight", "auto", "highlight mode: "+strings.Join(validHighlightModes, ", "))
}

func runQuery(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("highlight")
	if mode == "auto" {
		mode = "none"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			mode = "color"
		}
	}
	highlighter, err := newHighlighter(mode)
	if err != nil {
		return err
	}

	query := args[0]
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("search term cannot be blank")
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	log := rt.logger.WithComponent("query").WithTerm(trimmed)
	items, err := rt.source.Fetch(cmd.Context(), trimmed)
	if err != nil {
		log.Report(errors.NewFetchError(trimmed, err), "query failed")
		if errors.IsCanceled(err) {
			return fmt.Errorf("lookup canceled: %w", err)
		}
		return fmt.Errorf("lookup failed: %w", err)
	}
	log.Debug("query applied", "results", len(items))

	if len(items) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), rt.cfg.Search.EmptyMsg)
		return nil
	}

	if mode == "color" {
		loadCustomThemes(rt.logger)
		highlighter = colorHighlighter(styles.ForTheme(rt.cfg.TUI.Theme))
	}

	out := cmd.OutOrStdout()
	for _, it := range items {
		fmt.Fprintln(out, search.Highlight(it.Name, query, highlighter.match, highlighter.plain))
	}
	return nil
}

type highlighter struct {
	match func(string) string
	plain func(string) string
}

func identity(s string) string { return s }

func newHighlighter(mode string) (highlighter, error) {
	switch mode {
	case "none", "color":
		return highlighter{match: identity, plain: identity}, nil
	case "brackets":
		return highlighter{
			match: func(s string) string { return "[" + s + "]" },
			plain: identity,
		}, nil
	default:
		return highlighter{}, fmt.Errorf("invalid highlight mode %q (valid: %s)", mode, strings.Join(validHighlightModes, ", "))
	}
}

func colorHighlighter(st *styles.Styles) highlighter {
	return highlighter{
		match: func(s string) string { return st.Match.Render(s) },
		plain: func(s string) string { return st.Item.Render(s) },
	}
}
