// Package styles defines the lipgloss styles and color themes of the
// search box.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the search box renders with. Build one per theme
// with New; a Styles value is read-only after construction.
type Styles struct {
	Palette *ColorPalette

	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Status rows under the input
	Loading lipgloss.Style
	Empty   lipgloss.Style
	Error   lipgloss.Style

	// Result list
	List        lipgloss.Style
	Item        lipgloss.Style
	ItemCursor  lipgloss.Style
	Match       lipgloss.Style
	MatchCursor lipgloss.Style
	More        lipgloss.Style

	// Committed value
	SelectedLabel lipgloss.Style
	SelectedValue lipgloss.Style

	// Help bar
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// New builds the styles for a palette.
func New(p *ColorPalette) *Styles {
	s := &Styles{Palette: p}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Prompt = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	s.Input = lipgloss.NewStyle().Foreground(p.Text)
	s.Placeholder = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)
	s.Cursor = lipgloss.NewStyle().Foreground(p.Primary)

	s.Loading = lipgloss.NewStyle().Foreground(p.Warning)
	s.Empty = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)

	s.List = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.Item = lipgloss.NewStyle().Foreground(p.Text)
	s.ItemCursor = lipgloss.NewStyle().
		Foreground(p.CursorFg).
		Background(p.CursorBg).
		Bold(true)
	s.Match = lipgloss.NewStyle().
		Foreground(p.MatchFg).
		Background(p.MatchBg).
		Bold(true)
	s.MatchCursor = lipgloss.NewStyle().
		Foreground(p.MatchFg).
		Background(p.CursorBg).
		Bold(true).
		Underline(true)
	s.More = lipgloss.NewStyle().Foreground(p.Muted)

	s.SelectedLabel = lipgloss.NewStyle().Foreground(p.Muted)
	s.SelectedValue = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)
	s.HelpDesc = lipgloss.NewStyle().Foreground(p.Muted)

	return s
}

// ForTheme returns the styles for a named theme. Unknown names fall back to
// the default theme.
func ForTheme(name string) *Styles {
	return New(GetPalette(ThemeName(name)))
}

// Default returns the styles for the default theme.
func Default() *Styles {
	return New(DefaultPalette())
}
