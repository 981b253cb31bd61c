// Package keymap defines the key bindings of the search box and exposes them
// to the help bar.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the search box reacts to. Keys that are not
// bound here are forwarded to the text input.
type KeyMap struct {
	// Result list navigation
	Up   key.Binding
	Down key.Binding

	// Enter selects the highlighted result, or submits the term as typed
	Select key.Binding

	// Clear resets the search box. Only enabled while the term is non-blank.
	Clear key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Clear},
		{k.Help, k.Quit},
	}
}

// SetSearchActive enables the bindings that only make sense while a term is
// typed. Disabled bindings are hidden from the help bar and never match.
func (k *KeyMap) SetSearchActive(active bool) {
	k.Select.SetEnabled(active)
	k.Clear.SetEnabled(active)
}

// SetListActive enables list navigation while results are shown.
func (k *KeyMap) SetListActive(active bool) {
	k.Up.SetEnabled(active)
	k.Down.SetEnabled(active)
}
