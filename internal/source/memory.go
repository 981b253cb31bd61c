package source

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
)

// Memory filters a slice of items.
type Memory struct {
	opts Options

	mu    sync.RWMutex
	items []autocomplete.Item
}

// NewMemory creates a Memory source over a copy of items.
func NewMemory(items []autocomplete.Item, opts Options) *Memory {
	return &Memory{
		opts:  opts.withDefaults("source-memory"),
		items: slices.Clone(items),
	}
}

// Fetch returns the items whose name contains term, ignoring case.
func (m *Memory) Fetch(ctx context.Context, term string) ([]autocomplete.Item, error) {
	if err := delay(ctx, m.opts.Clock, m.opts.Latency); err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []autocomplete.Item
	for _, it := range m.items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it)
		}
	}
	m.opts.Logger.Debug("lookup", "term", term, "results", len(out))
	return out, nil
}

// Replace swaps the items.
func (m *Memory) Replace(items []autocomplete.Item) error {
	m.mu.Lock()
	m.items = slices.Clone(items)
	m.mu.Unlock()
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
