// Package search splits result names into highlighted and plain segments.
package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Segment is a run of a name that either matches the query or does not.
type Segment struct {
	Text  string
	Match bool
}

// Match splits name around every case-insensitive, literal occurrence of
// query. Concatenating the Text of the returned segments yields name.
// A blank query produces a single non-matching segment holding name.
func Match(name, query string) []Segment {
	if strings.TrimSpace(query) == "" {
		return []Segment{{Text: name}}
	}

	indices := findAll(name, query)
	if len(indices) == 0 {
		return []Segment{{Text: name}}
	}

	segs := make([]Segment, 0, 2*len(indices)+1)
	lastEnd := 0
	for _, idx := range indices {
		if idx[0] > lastEnd {
			segs = append(segs, Segment{Text: name[lastEnd:idx[0]]})
		}
		if idx[1] > idx[0] {
			segs = append(segs, Segment{Text: name[idx[0]:idx[1]], Match: true})
		}
		lastEnd = idx[1]
	}
	if lastEnd < len(name) {
		segs = append(segs, Segment{Text: name[lastEnd:]})
	}
	return segs
}

// Render joins segments, passing matching runs through matchStyle and the
// rest through plainStyle. A nil style leaves its runs unchanged.
func Render(segs []Segment, matchStyle, plainStyle func(string) string) string {
	var b strings.Builder
	for _, s := range segs {
		style := plainStyle
		if s.Match {
			style = matchStyle
		}
		if style == nil {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(style(s.Text))
	}
	return b.String()
}

// Highlight is Render(Match(name, query), matchStyle, plainStyle).
func Highlight(name, query string, matchStyle, plainStyle func(string) string) string {
	return Render(Match(name, query), matchStyle, plainStyle)
}

// findAll returns the byte ranges of every non-overlapping occurrence of
// query in name. Queries the regexp engine rejects, such as invalid UTF-8,
// are matched byte for byte with ASCII case folding.
func findAll(name, query string) [][]int {
	if utf8.ValidString(query) {
		if re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query)); err == nil {
			return re.FindAllStringIndex(name, -1)
		}
	}
	return findBytes(name, query)
}

func findBytes(name, query string) [][]int {
	var indices [][]int
	for i := 0; i+len(query) <= len(name); {
		if equalFoldASCII(name[i:i+len(query)], query) {
			indices = append(indices, []int{i, i + len(query)})
			i += len(query)
			continue
		}
		i++
	}
	return indices
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
