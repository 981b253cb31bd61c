package msg

import (
	"github.com/Iron-Ham/searchbox/internal/catalog"
)

// StateChangedMsg signals that the controller applied a lookup response and
// the model should re-read its state.
type StateChangedMsg struct{}

// LookupFailedMsg carries a lookup failure reported by the controller.
type LookupFailedMsg struct {
	Err error
}

// CatalogLoadedMsg is sent by the catalog watcher after the catalog file
// changed and parsed successfully.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
}

// CatalogReplacedMsg is the result of ReplaceCatalog.
type CatalogReplacedMsg struct {
	Path  string
	Items int
	Err   error
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// ClearNoticeMsg expires the transient notice line. ID ties it to the notice
// that scheduled it so a newer notice is not cleared early.
type ClearNoticeMsg struct {
	ID int
}
