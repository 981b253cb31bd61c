// Package catalog loads the list of names the search box looks up.
//
// A catalog is either the built-in demo list or a file. Supported files are
// YAML and JSON (a list of entries, or a mapping with an "items" list), TOML
// (an "items" array or [[items]] tables) and plain text (one name per line,
// "#" starts a comment). An entry is either a bare name or an {id, name}
// pair; entries without an ID get a stable name-based UUID.
package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// FormatFromPath infers the format from the file extension. Unknown
// extensions are read as plain text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Catalog is a loaded, de-duplicated list of items in file order.
type Catalog struct {
	// Path is the source file, empty for the built-in catalog.
	Path  string
	Items []autocomplete.Item
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.Items)
}

// Names returns the item names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Items))
	for i, it := range c.Items {
		names[i] = it.Name
	}
	return names
}

// Options controls how a catalog is built.
type Options struct {
	// Exclude holds case-insensitive glob patterns; matching names are dropped.
	Exclude []string
	Logger  *logging.Logger
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string, opts Options) (*Catalog, error) {
	if path == "" {
		return Builtin(opts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogError(path, "reading file", err)
	}
	return Parse(path, FormatFromPath(path), data, opts)
}

// Builtin returns the demo catalog, filtered by opts.Exclude.
func Builtin(opts Options) (*Catalog, error) {
	entries := make([]entry, len(builtinNames))
	for i, name := range builtinNames {
		entries[i] = entry{Name: name}
	}
	return build("", entries, opts)
}

// Parse decodes data in the given format. path is only used in errors.
func Parse(path string, format Format, data []byte, opts Options) (*Catalog, error) {
	var (
		entries []entry
		err     error
	)
	switch format {
	case FormatYAML, FormatJSON:
		entries, err = parseYAML(data)
	case FormatTOML:
		entries, err = parseTOML(data)
	case FormatText:
		entries, err = parseText(data)
	default:
		return nil, errors.NewCatalogError(path, fmt.Sprintf("unknown format %q", format), nil)
	}
	if err != nil {
		var catErr *errors.CatalogError
		if errors.As(err, &catErr) {
			catErr.Path = path
			return nil, catErr
		}
		return nil, errors.NewCatalogError(path, "decoding "+string(format), err)
	}
	return build(path, entries, opts)
}

// CompileExclude compiles exclude patterns. Patterns match lowercased names.
func CompileExclude(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern %q", p)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// ItemID returns the ID assigned to an entry that has none.
func ItemID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// entry is one decoded catalog record before validation.
type entry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// UnmarshalYAML accepts a bare scalar as a name.
func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Name = node.Value
		return nil
	}
	type plain entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = entry(p)
	return nil
}

func parseYAML(data []byte) ([]entry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var entries []entry
		if err := doc.Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil
	case yaml.MappingNode:
		var wrapped struct {
			Items []entry `yaml:"items"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, err
		}
		return wrapped.Items, nil
	default:
		return nil, errors.NewCatalogError("", "expected a list or an items mapping", nil).WithEntry(doc.Line)
	}
}

func parseTOML(data []byte) ([]entry, error) {
	var doc struct {
		Items []any `toml:"items"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(doc.Items))
	for i, raw := range doc.Items {
		switch v := raw.(type) {
		case string:
			entries = append(entries, entry{Name: v})
		case map[string]any:
			id, _ := v["id"].(string)
			name, _ := v["name"].(string)
			entries = append(entries, entry{ID: id, Name: name})
		default:
			return nil, errors.NewCatalogError("", fmt.Sprintf("unsupported entry type %T", raw), nil).WithEntry(i + 1)
		}
	}
	return entries, nil
}

func parseText(data []byte) ([]entry, error) {
	var entries []entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, entry{Name: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// build validates entries, assigns missing IDs, applies exclusions and drops
// duplicate IDs, keeping the first occurrence.
func build(path string, entries []entry, opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("catalog")

	exclude, err := CompileExclude(opts.Exclude)
	if err != nil {
		return nil, errors.NewCatalogError(path, "compiling exclude patterns", err)
	}

	items := make([]autocomplete.Item, 0, len(entries))
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errors.NewCatalogError(path, "entry has no name", nil).WithEntry(i + 1)
		}
		if excluded(exclude, name) {
			logger.Debug("entry excluded", "name", name)
			continue
		}

		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = ItemID(name)
		}
		if first, dup := seen[id]; dup {
			logger.Warn("duplicate entry dropped", "id", id, "name", name, "entry", i+1, "first", first)
			continue
		}
		seen[id] = i + 1
		items = append(items, autocomplete.Item{ID: id, Name: name})
	}

	logger.Debug("catalog built", "path", path, "items", len(items))
	return &Catalog{Path: path, Items: items}, nil
}

func excluded(globs []glob.Glob, name string) bool {
	lower := strings.ToLower(name)
	for _, g := range globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}
