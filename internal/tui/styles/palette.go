package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Purple/green dark theme
	ThemeMonokai        ThemeName = "monokai"         // Classic Monokai editor colors
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeNord           ThemeName = "nord"            // Nord theme - cool blue-gray
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light by Ethan Schoonover
	ThemeOneDark        ThemeName = "one-dark"        // Atom One Dark theme
	ThemeGruvbox        ThemeName = "gruvbox"         // Gruvbox retro groove
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeSolarizedLight),
		string(ThemeOneDark),
		string(ThemeGruvbox),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (title, prompt, selected value)
	Primary lipgloss.Color
	// Secondary accent color (help keys)
	Secondary lipgloss.Color
	// Warning color (loading indicator)
	Warning lipgloss.Color
	// Error color (lookup failures)
	Error lipgloss.Color
	// Muted color (placeholder, empty message, help text)
	Muted lipgloss.Color
	// Surface color (panel background)
	Surface lipgloss.Color
	// Text color (result names)
	Text lipgloss.Color
	// Border color (result list border)
	Border lipgloss.Color

	// Highlight of the query inside a result name
	MatchFg lipgloss.Color
	MatchBg lipgloss.Color
	// Row under the cursor
	CursorFg lipgloss.Color
	CursorBg lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		MatchBg:  lipgloss.Color("#854D0E"), // Dark yellow
		MatchFg:  lipgloss.Color("#FEF3C7"), // Light cream
		CursorBg: lipgloss.Color("#374151"), // Gray-700
		CursorFg: lipgloss.Color("#F9FAFB"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:     lipgloss.Color("#F92672"), // Monokai pink (same as primary)
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:   lipgloss.Color("#272822"), // Monokai background
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection

		MatchBg:  lipgloss.Color("#49483E"),
		MatchFg:  lipgloss.Color("#E6DB74"),
		CursorBg: lipgloss.Color("#3E3D32"),
		CursorFg: lipgloss.Color("#F8F8F2"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection

		MatchBg:  lipgloss.Color("#44475A"),
		MatchFg:  lipgloss.Color("#F1FA8C"),
		CursorBg: lipgloss.Color("#44475A"),
		CursorFg: lipgloss.Color("#FF79C6"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1

		MatchBg:  lipgloss.Color("#3B4252"),
		MatchFg:  lipgloss.Color("#EBCB8B"),
		CursorBg: lipgloss.Color("#5E81AC"),
		CursorFg: lipgloss.Color("#ECEFF4"),
	}
}

// SolarizedLightPalette returns the Solarized Light theme palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Solarized blue
		Secondary: lipgloss.Color("#859900"), // Solarized green
		Warning:   lipgloss.Color("#B58900"), // Solarized yellow
		Error:     lipgloss.Color("#DC322F"), // Solarized red
		Muted:     lipgloss.Color("#93A1A1"), // Base1
		Surface:   lipgloss.Color("#FDF6E3"), // Base3 background
		Text:      lipgloss.Color("#657B83"), // Base00 text
		Border:    lipgloss.Color("#EEE8D5"), // Base2

		MatchBg:  lipgloss.Color("#EEE8D5"),
		MatchFg:  lipgloss.Color("#B58900"),
		CursorBg: lipgloss.Color("#268BD2"),
		CursorFg: lipgloss.Color("#FDF6E3"),
	}
}

// OneDarkPalette returns the Atom One Dark theme palette.
func OneDarkPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#61AFEF"), // One Dark blue
		Secondary: lipgloss.Color("#98C379"), // One Dark green
		Warning:   lipgloss.Color("#E5C07B"), // One Dark yellow
		Error:     lipgloss.Color("#E06C75"), // One Dark red
		Muted:     lipgloss.Color("#5C6370"), // One Dark comment
		Surface:   lipgloss.Color("#282C34"), // One Dark background
		Text:      lipgloss.Color("#ABB2BF"), // One Dark foreground
		Border:    lipgloss.Color("#3E4451"), // One Dark gutter

		MatchBg:  lipgloss.Color("#3E4451"),
		MatchFg:  lipgloss.Color("#E5C07B"),
		CursorBg: lipgloss.Color("#61AFEF"),
		CursorFg: lipgloss.Color("#282C34"),
	}
}

// GruvboxPalette returns the Gruvbox theme palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#83A598"), // Gruvbox aqua
		Secondary: lipgloss.Color("#B8BB26"), // Gruvbox green
		Warning:   lipgloss.Color("#FABD2F"), // Gruvbox yellow
		Error:     lipgloss.Color("#FB4934"), // Gruvbox red
		Muted:     lipgloss.Color("#928374"), // Gruvbox gray
		Surface:   lipgloss.Color("#282828"), // Gruvbox bg0
		Text:      lipgloss.Color("#EBDBB2"), // Gruvbox fg
		Border:    lipgloss.Color("#3C3836"), // Gruvbox bg1

		MatchBg:  lipgloss.Color("#3C3836"),
		MatchFg:  lipgloss.Color("#FABD2F"),
		CursorBg: lipgloss.Color("#FE8019"),
		CursorFg: lipgloss.Color("#282828"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	// Check custom themes first
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	case ThemeOneDark:
		return OneDarkPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	default:
		return DefaultPalette()
	}
}
