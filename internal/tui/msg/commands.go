package msg

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// Replacer swaps the items a data source searches.
type Replacer interface {
	Replace(items []autocomplete.Item) error
}

// ReplaceCatalog returns a command that loads a reloaded catalog into the
// data source. Rebuilding an index can take a while, so it runs off the UI
// loop.
func ReplaceCatalog(r Replacer, cat *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return CatalogReplacedMsg{Err: fmt.Errorf("source is nil")}
		}
		if cat == nil {
			return CatalogReplacedMsg{Err: fmt.Errorf("catalog is nil")}
		}
		err := r.Replace(cat.Items)
		return CatalogReplacedMsg{Path: cat.Path, Items: cat.Len(), Err: err}
	}
}

// ClearNoticeAfter returns a command that sends ClearNoticeMsg{ID: id} after d.
func ClearNoticeAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNoticeMsg{ID: id}
	})
}
