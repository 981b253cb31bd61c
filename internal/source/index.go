package source

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
)

const (
	docType  = "item"
	keyField = "key"
)

// Index looks items up in an in-memory bleve index.
//
// Names are indexed lowercased under a single keyword-analyzed field and
// queried with a *term* wildcard, which gives substring semantics. Wildcard
// syntax cannot be escaped, so "*", "?" and backslashes in the term are
// widened to "?" and the hits are checked against the literal term afterwards.
type Index struct {
	opts Options

	mu     sync.RWMutex
	snap   *snapshot
	closed bool
}

// snapshot is one immutable generation of the index.
type snapshot struct {
	index bleve.Index
	items []autocomplete.Item
	pos   map[string]int // item ID to catalog position
}

// NewIndex builds an Index over items.
func NewIndex(items []autocomplete.Item, opts Options) (*Index, error) {
	snap, err := buildSnapshot(items)
	if err != nil {
		return nil, err
	}
	return &Index{
		opts: opts.withDefaults("source-index"),
		snap: snap,
	}, nil
}

// Fetch returns the items whose name contains term, ignoring case.
func (x *Index) Fetch(ctx context.Context, term string) ([]autocomplete.Item, error) {
	if err := delay(ctx, x.opts.Clock, x.opts.Latency); err != nil {
		return nil, err
	}

	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.closed {
		return nil, errors.ErrClosed
	}
	snap := x.snap
	if len(snap.items) == 0 {
		return nil, nil
	}

	needle := strings.ToLower(term)
	q := bleve.NewWildcardQuery("*" + wildcardLiteral(needle) + "*")
	q.SetField(keyField)
	req := bleve.NewSearchRequestOptions(q, len(snap.items), 0, false)

	res, err := snap.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "index search")
	}

	out := make([]autocomplete.Item, 0, len(res.Hits))
	for _, hit := range res.Hits {
		i, ok := snap.pos[hit.ID]
		if !ok {
			continue
		}
		it := snap.items[i]
		if strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b autocomplete.Item) int {
		return cmp.Compare(snap.pos[a.ID], snap.pos[b.ID])
	})

	x.opts.Logger.Debug("lookup", "term", term, "hits", len(res.Hits), "results", len(out))
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Replace rebuilds the index over items and swaps it in.
func (x *Index) Replace(items []autocomplete.Item) error {
	snap, err := buildSnapshot(items)
	if err != nil {
		return err
	}

	x.mu.Lock()
	if x.closed {
		x.mu.Unlock()
		_ = snap.index.Close()
		return errors.ErrClosed
	}
	old := x.snap
	x.snap = snap
	x.mu.Unlock()

	x.opts.Logger.Info("index rebuilt", "items", len(items))
	return old.index.Close()
}

// Close releases the index. Later lookups fail with errors.ErrClosed.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return nil
	}
	x.closed = true
	return x.snap.index.Close()
}

func buildSnapshot(items []autocomplete.Item) (*snapshot, error) {
	index, err := bleve.NewMemOnly(indexMapping())
	if err != nil {
		return nil, errors.Wrap(err, "creating index")
	}

	snap := &snapshot{
		index: index,
		items: slices.Clone(items),
		pos:   make(map[string]int, len(items)),
	}

	batch := index.NewBatch()
	for i, it := range items {
		if _, dup := snap.pos[it.ID]; dup {
			continue
		}
		snap.pos[it.ID] = i
		doc := map[string]interface{}{keyField: strings.ToLower(it.Name)}
		if err := batch.Index(it.ID, doc); err != nil {
			_ = index.Close()
			return nil, errors.Wrapf(err, "indexing %q", it.Name)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, errors.Wrap(err, "indexing batch")
	}
	return snap, nil
}

func indexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	itemMapping := bleve.NewDocumentMapping()

	// Whole lowercased name as one term
	keyFieldMapping := bleve.NewTextFieldMapping()
	keyFieldMapping.Analyzer = keyword.Name
	keyFieldMapping.Store = false
	keyFieldMapping.IncludeInAll = false
	keyFieldMapping.IncludeTermVectors = false
	itemMapping.AddFieldMappingsAt(keyField, keyFieldMapping)

	indexMapping.AddDocumentMapping(docType, itemMapping)
	indexMapping.DefaultType = docType
	return indexMapping
}

// wildcardLiteral replaces the wildcard and escape characters in s with "?".
func wildcardLiteral(s string) string {
	return strings.NewReplacer("*", "?", "?", "?", `\`, "?").Replace(s)
}
