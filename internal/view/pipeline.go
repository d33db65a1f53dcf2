package view

import (
	"twopane/internal/errors"
	"twopane/internal/log"
	"twopane/internal/source"
	"twopane/pkg/types"
)

// Pipeline is the fixed chain source -> sort -> filter for one pane. It owns
// the source snapshot the layers index into and walks the chain generically
// in both directions. Writes never go through the pipeline; they happen on
// the file system or the tag store below it and come back as a Refresh.
type Pipeline struct {
	src  *source.Source
	dir  string
	tags TagGetter

	children []types.Entry
	sort     *SortLayer
	filter   *FilterLayer
	layers   []Layer // bottom-up: sort, then filter

	// notify is the injected change sink; called after every Refresh so
	// the consumer re-reads rows. Never a back-reference into the UI.
	notify func()
}

// NewPipeline builds the chain over src with tag lookups from tags. The
// layer order is fixed here, at construction time.
func NewPipeline(src *source.Source, tags TagGetter) *Pipeline {
	p := &Pipeline{
		src:  src,
		tags: tags,
		sort: NewSortLayer(),
	}
	p.filter = NewFilterLayer(p.sort, p.sort.Entry, tags)
	p.layers = []Layer{p.sort, p.filter}
	return p
}

// SetNotify installs the callback invoked after each Refresh.
func (p *Pipeline) SetNotify(notify func()) {
	p.notify = notify
}

// SetDirectory points the pipeline at dir and rebuilds the listing. The
// filter's search scope follows the directory.
func (p *Pipeline) SetDirectory(dir string) error {
	p.dir = dir
	p.filter.SetRootPath(dir)
	return p.Refresh()
}

// Directory returns the directory the pipeline currently presents.
func (p *Pipeline) Directory() string {
	return p.dir
}

// Refresh re-queries the source and rebuilds every layer eagerly. Call it
// for each change notification under the observed directory; a toggle
// rename keeps the sort order (effective names do not change) but still
// needs the path-to-row mapping re-resolved.
func (p *Pipeline) Refresh() error {
	children, err := p.src.Children(p.dir)
	if err != nil {
		return err
	}
	p.children = children
	p.sort.Refresh(children)
	p.filter.Invalidate()

	log.LogWithFields(log.F("dir", p.dir), log.F("entries", len(children))).Debug("pipeline refreshed")
	if p.notify != nil {
		p.notify()
	}
	return nil
}

// SetSearch installs the filter's search string.
func (p *Pipeline) SetSearch(search string) {
	p.filter.SetSearch(search)
}

// Search returns the filter's active search string.
func (p *Pipeline) Search() string {
	return p.filter.Search()
}

// RowCount returns the number of rows the top of the chain presents.
func (p *Pipeline) RowCount() int {
	return p.top().RowCount()
}

// EntryAt resolves a top-level row to its entry: MapToSource repeatedly
// down the chain, then a fresh query against the source so no stale
// metadata is handed out.
func (p *Pipeline) EntryAt(row int) (types.Entry, error) {
	idx := row
	var err error
	for i := len(p.layers) - 1; i >= 0; i-- {
		idx, err = p.layers[i].MapToSource(idx)
		if err != nil {
			return types.Entry{}, err
		}
	}
	if idx < 0 || idx >= len(p.children) {
		return types.Entry{}, rowOutOfRange(idx)
	}
	return p.src.Entry(p.children[idx].Path)
}

// RowForPath resolves a path to its top-level row: find it in the source
// listing, then MapFromSource upward. A NotFound anywhere on the way up
// means the path is not currently visible; that is the normal state for a
// filtered-out entry, not an error the consumer should surface.
func (p *Pipeline) RowForPath(path string) (int, error) {
	idx, err := source.IndexOf(p.children, path)
	if err != nil {
		return 0, err
	}
	for _, layer := range p.layers {
		idx, err = layer.MapFromSource(idx)
		if err != nil {
			return 0, err
		}
	}
	return idx, nil
}

// Visible reports whether path currently maps to a displayed row.
func (p *Pipeline) Visible(path string) bool {
	_, err := p.RowForPath(path)
	return err == nil
}

// Entries returns the currently visible entries in display order, resolved
// from the snapshot. Convenience for headless consumers like `twopane ls`.
func (p *Pipeline) Entries() ([]types.Entry, error) {
	out := make([]types.Entry, 0, p.RowCount())
	for row := 0; row < p.RowCount(); row++ {
		e, err := p.EntryAt(row)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (p *Pipeline) top() Layer {
	return p.layers[len(p.layers)-1]
}
