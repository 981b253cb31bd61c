package autocomplete

import (
	"context"
	"strings"
)

// Item is a single lookup result.
type Item struct {
	// ID is unique within one result set.
	ID string
	// Name is displayed and matched against the query.
	Name string
}

// Fetcher looks up items for a trimmed search term.
//
// Responses may arrive in any order and with any latency; the controller
// discards the ones that belong to superseded terms.
type Fetcher interface {
	Fetch(ctx context.Context, term string) ([]Item, error)
}

// FetchFunc adapts a plain function to the Fetcher interface.
type FetchFunc func(ctx context.Context, term string) ([]Item, error)

// Fetch calls f(ctx, term).
func (f FetchFunc) Fetch(ctx context.Context, term string) ([]Item, error) {
	return f(ctx, term)
}

// Status is the derived state of the search box.
type Status int

const (
	// StatusIdle means no lookup is pending. Results may or may not be present.
	StatusIdle Status = iota
	// StatusLoading means a lookup is debounced or in flight.
	StatusLoading
	// StatusEmpty means the last lookup returned nothing (or failed).
	StatusEmpty
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// State is a snapshot of the controller. It is a copy; mutating it has no
// effect on the controller.
type State struct {
	Term       string
	Status     Status
	Results    []Item
	Generation uint64 // token of the most recent request
}

// HasTerm reports whether the trimmed term is non-empty.
func (s State) HasTerm() bool {
	return strings.TrimSpace(s.Term) != ""
}

// HasResults reports whether the result list should be shown.
func (s State) HasResults() bool {
	return s.Status != StatusLoading && len(s.Results) > 0
}
