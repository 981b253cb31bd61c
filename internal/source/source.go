// Package source provides the Fetcher implementations behind the search box.
//
// Both sources match case-insensitive substrings of item names and return
// results in catalog order. [Memory] scans a slice; [Index] queries an
// in-memory bleve index. Either can simulate backend latency so the
// debounce and loading states are visible in the terminal UI.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/benbjohnson/clock"
)

// Source is a Fetcher whose items can be replaced while it is in use.
type Source interface {
	autocomplete.Fetcher
	// Replace swaps the searchable items. In-flight lookups finish against
	// the previous items.
	Replace(items []autocomplete.Item) error
	Close() error
}

// Kind names a Source implementation.
type Kind string

const (
	KindMemory Kind = "memory"
	KindIndex  Kind = "index"
)

// Kinds returns the valid source kinds.
func Kinds() []string {
	return []string{string(KindMemory), string(KindIndex)}
}

// Options configures a Source.
type Options struct {
	// Latency delays every lookup. Zero disables the delay.
	Latency time.Duration
	Clock   clock.Clock
	Logger  *logging.Logger
}

func (o Options) withDefaults(component string) Options {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = logging.NopLogger()
	}
	o.Logger = o.Logger.WithComponent(component)
	return o
}

// New creates the Source named by kind.
func New(kind string, items []autocomplete.Item, opts Options) (Source, error) {
	switch Kind(kind) {
	case KindMemory:
		return NewMemory(items, opts), nil
	case KindIndex:
		return NewIndex(items, opts)
	default:
		return nil, fmt.Errorf("%w: %q (valid: %v)", errors.ErrSourceUnknown, kind, Kinds())
	}
}

// delay blocks for d on clk or until ctx is done.
func delay(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := clk.Timer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
