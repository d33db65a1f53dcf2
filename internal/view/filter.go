package view

import (
	"path/filepath"
	"strings"

	"twopane/pkg/types"
)

// FilterLayer presents the subsequence of an underlying layer's rows that
// match the active search string: kept iff the search is a substring of the
// effective name or of any tag on the entry's path, case-insensitive. An
// empty search keeps every row and never touches the tag store.
//
// Changing the search or the root path throws the whole row mapping away;
// it is rebuilt lazily on the next access. Directories here are small, so
// correctness wins over incremental updates.
type FilterLayer struct {
	src     Layer
	entryAt func(sourceRow int) (types.Entry, error)
	tags    TagGetter

	search   string
	rootPath string

	dirty      bool
	rows       []int       // filter row -> source row
	fromSource map[int]int // source row -> filter row
}

// NewFilterLayer creates a filter over src. entryAt resolves one of src's
// rows to its entry by walking the rest of the chain; the filter itself
// never reaches past its immediate source.
func NewFilterLayer(src Layer, entryAt func(sourceRow int) (types.Entry, error), tags TagGetter) *FilterLayer {
	return &FilterLayer{
		src:     src,
		entryAt: entryAt,
		tags:    tags,
		dirty:   true,
	}
}

// SetSearch installs a new search string and invalidates the mapping.
func (l *FilterLayer) SetSearch(search string) {
	if l.search == search {
		return
	}
	l.search = search
	l.dirty = true
}

// Search returns the active search string.
func (l *FilterLayer) Search() string {
	return l.search
}

// SetRootPath scopes the search to the subtree under path. Entries outside
// the subtree are unaffected by the search string.
func (l *FilterLayer) SetRootPath(path string) {
	clean := ""
	if path != "" {
		clean = filepath.Clean(path)
	}
	if l.rootPath == clean {
		return
	}
	l.rootPath = clean
	l.dirty = true
}

// Invalidate throws the row mapping away so the next access rebuilds it
// from the current state of the layer beneath.
func (l *FilterLayer) Invalidate() {
	l.dirty = true
}

// RowCount returns the number of visible rows.
func (l *FilterLayer) RowCount() int {
	l.ensure()
	return len(l.rows)
}

// MapToSource translates a visible row to the underlying layer's row.
func (l *FilterLayer) MapToSource(row int) (int, error) {
	l.ensure()
	if row < 0 || row >= len(l.rows) {
		return 0, rowOutOfRange(row)
	}
	return l.rows[row], nil
}

// MapFromSource translates an underlying row up. A NotFound error means the
// row is currently filtered out, which is the normal state for a
// non-matching entry.
func (l *FilterLayer) MapFromSource(sourceRow int) (int, error) {
	l.ensure()
	row, ok := l.fromSource[sourceRow]
	if !ok {
		return 0, rowOutOfRange(sourceRow)
	}
	return row, nil
}

func (l *FilterLayer) ensure() {
	if !l.dirty {
		return
	}
	l.dirty = false

	count := l.src.RowCount()
	l.rows = l.rows[:0]
	l.fromSource = make(map[int]int, count)
	for sourceRow := 0; sourceRow < count; sourceRow++ {
		if l.accepts(sourceRow) {
			l.fromSource[sourceRow] = len(l.rows)
			l.rows = append(l.rows, sourceRow)
		}
	}
}

func (l *FilterLayer) accepts(sourceRow int) bool {
	// Performance short-circuit: an empty search keeps everything and
	// bypasses entry resolution and tag lookups entirely.
	if l.search == "" {
		return true
	}

	entry, err := l.entryAt(sourceRow)
	if err != nil {
		// The entry vanished under us; keep the row and let the next
		// change notification sort it out.
		return true
	}

	if l.rootPath != "" && !underRoot(entry.Path, l.rootPath) {
		return true
	}

	needle := strings.ToLower(l.search)
	if strings.Contains(strings.ToLower(entry.EffectiveName), needle) {
		return true
	}
	if l.tags != nil && l.tags.Get(entry.Path).MatchesSubstring(needle) {
		return true
	}
	return false
}

func underRoot(path, root string) bool {
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}
