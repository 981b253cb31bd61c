package styles

import (
	"slices"
	"testing"
)

func TestValidThemes(t *testing.T) {
	ClearCustomThemes()
	themes := ValidThemes()

	expected := []string{
		"default", "monokai", "dracula", "nord",
		"solarized-light", "one-dark", "gruvbox",
	}
	if len(themes) != len(expected) {
		t.Errorf("ValidThemes() returned %d themes, want %d", len(themes), len(expected))
	}
	for _, want := range expected {
		if !slices.Contains(themes, want) {
			t.Errorf("ValidThemes() missing %q", want)
		}
	}
}

func TestIsValidTheme(t *testing.T) {
	ClearCustomThemes()

	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"default theme", "default", true},
		{"monokai theme", "monokai", true},
		{"dracula theme", "dracula", true},
		{"nord theme", "nord", true},
		{"solarized-light theme", "solarized-light", true},
		{"one-dark theme", "one-dark", true},
		{"gruvbox theme", "gruvbox", true},
		{"invalid theme", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidTheme(tt.theme)
			if got != tt.want {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	ClearCustomThemes()

	tests := []struct {
		theme   ThemeName
		primary string
	}{
		{ThemeDefault, "#A78BFA"},
		{ThemeMonokai, "#F92672"},
		{ThemeDracula, "#BD93F9"},
		{ThemeNord, "#88C0D0"},
		{ThemeSolarizedLight, "#268BD2"},
		{ThemeOneDark, "#61AFEF"},
		{ThemeGruvbox, "#83A598"},
		{ThemeName("missing"), "#A78BFA"},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			p := GetPalette(tt.theme)
			if p == nil {
				t.Fatal("GetPalette returned nil")
			}
			if string(p.Primary) != tt.primary {
				t.Errorf("Primary = %q, want %q", p.Primary, tt.primary)
			}
		})
	}
}

func TestBuiltinPalettesComplete(t *testing.T) {
	ClearCustomThemes()

	for _, name := range BuiltinThemes() {
		p := GetPalette(ThemeName(name))
		colors := map[string]string{
			"Primary":   string(p.Primary),
			"Secondary": string(p.Secondary),
			"Warning":   string(p.Warning),
			"Error":     string(p.Error),
			"Muted":     string(p.Muted),
			"Surface":   string(p.Surface),
			"Text":      string(p.Text),
			"Border":    string(p.Border),
			"MatchFg":   string(p.MatchFg),
			"MatchBg":   string(p.MatchBg),
			"CursorFg":  string(p.CursorFg),
			"CursorBg":  string(p.CursorBg),
		}
		for field, color := range colors {
			if !isValidHexColor(color) {
				t.Errorf("theme %s: %s = %q is not a hex color", name, field, color)
			}
		}
	}
}
