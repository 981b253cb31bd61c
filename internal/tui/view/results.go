package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/tui/search"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ResultsState holds the state needed to render the result list.
type ResultsState struct {
	// Items are the results in source order
	Items []autocomplete.Item

	// Query is the term to highlight in each name
	Query string

	// Cursor is the index of the highlighted row, or -1 for none
	Cursor int

	// MaxVisible limits how many rows are shown at once
	MaxVisible int

	// Width is the available terminal width; 0 disables truncation
	Width int
}

// listChrome is the width taken by the list border and padding.
const listChrome = 4

// Window returns the half-open range [start, end) of n rows to show so that
// the cursor stays visible.
func Window(n, cursor, maxVisible int) (start, end int) {
	if maxVisible <= 0 || n <= maxVisible {
		return 0, n
	}
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}
	return start, start + maxVisible
}

// RenderResults renders the result list. It returns "" when there are no
// items.
func RenderResults(state ResultsState, st *styles.Styles) string {
	if len(state.Items) == 0 {
		return ""
	}

	start, end := Window(len(state.Items), state.Cursor, state.MaxVisible)
	rowWidth := 0
	if state.Width > 0 {
		rowWidth = max(1, state.Width-listChrome)
	}

	rows := make([]string, 0, end-start+2)
	if start > 0 {
		rows = append(rows, st.More.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		rows = append(rows, renderRow(state.Items[i].Name, state.Query, i == state.Cursor, rowWidth, st))
	}
	if rest := len(state.Items) - end; rest > 0 {
		rows = append(rows, st.More.Render(fmt.Sprintf("↓ %d more", rest)))
	}

	return st.List.Render(strings.Join(rows, "\n"))
}

// renderRow highlights query inside name and truncates the styled result to
// width cells.
func renderRow(name, query string, active bool, width int, st *styles.Styles) string {
	match, plain := st.Match, st.Item
	if active {
		match, plain = st.MatchCursor, st.ItemCursor
	}

	row := search.Highlight(name, query, styleFunc(match), styleFunc(plain))
	if width > 0 && ansi.StringWidth(row) > width {
		row = ansi.Truncate(row, width, "…")
	}
	return row
}

func styleFunc(s lipgloss.Style) func(string) string {
	return func(text string) string {
		return s.Render(text)
	}
}
