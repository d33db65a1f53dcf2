package tui

import (
	"path/filepath"

	"twopane/internal/errors"
	"twopane/internal/log"
	"twopane/internal/nav"
	"twopane/internal/source"
	"twopane/internal/view"
	"twopane/pkg/types"
)

// Pane couples one view pipeline with its navigation history, directory
// watcher and cursor. All mutation of the pipeline happens through the
// pane, synchronously on the update loop.
type Pane struct {
	pipeline *view.Pipeline
	history  *nav.History
	watcher  *source.Watcher
	cursor   int
}

// NewPane builds a pane over src starting at dir. The watcher may be nil in
// headless use; the TUI wires one per pane.
func NewPane(src *source.Source, tagStore view.TagGetter, watcher *source.Watcher, dir string) (*Pane, error) {
	p := &Pane{
		pipeline: view.NewPipeline(src, tagStore),
		history:  nav.New(),
		watcher:  watcher,
	}
	if err := p.Navigate(dir); err != nil {
		return nil, err
	}
	return p, nil
}

// Navigate points the pane at dir and records it in the history.
func (p *Pane) Navigate(dir string) error {
	return p.setDirectory(dir, true)
}

// Back revisits the previous directory without touching the history order.
func (p *Pane) Back() error {
	dir, ok := p.history.Back()
	if !ok {
		return nil
	}
	return p.setDirectory(dir, false)
}

// Forward is the inverse of Back.
func (p *Pane) Forward() error {
	dir, ok := p.history.Forward()
	if !ok {
		return nil
	}
	return p.setDirectory(dir, false)
}

// Up navigates to the parent directory.
func (p *Pane) Up() error {
	parent := filepath.Dir(p.pipeline.Directory())
	if parent == p.pipeline.Directory() {
		return nil
	}
	return p.Navigate(parent)
}

func (p *Pane) setDirectory(dir string, push bool) error {
	if err := p.pipeline.SetDirectory(dir); err != nil {
		return err
	}
	if push {
		p.history.Push(dir)
	}
	if p.watcher != nil {
		if err := p.watcher.SetDirectory(dir); err != nil {
			log.LogWithError(err).Warn("could not watch directory")
		}
	}
	p.clampCursor()
	return nil
}

// Refresh re-queries the listing, keeping the cursor on the same path when
// that path is still visible.
func (p *Pane) Refresh() error {
	var keep string
	if e, err := p.Selected(); err == nil {
		keep = e.Path
	}

	if err := p.pipeline.Refresh(); err != nil {
		return err
	}

	if keep != "" {
		if row, err := p.pipeline.RowForPath(keep); err == nil {
			p.cursor = row
			return nil
		}
	}
	p.clampCursor()
	return nil
}

// SetSearch updates the filter; the cursor snaps back into range.
func (p *Pane) SetSearch(search string) {
	p.pipeline.SetSearch(search)
	p.clampCursor()
}

// Search returns the active search string.
func (p *Pane) Search() string {
	return p.pipeline.Search()
}

// Directory returns the directory the pane shows.
func (p *Pane) Directory() string {
	return p.pipeline.Directory()
}

// RowCount returns the number of visible rows.
func (p *Pane) RowCount() int {
	return p.pipeline.RowCount()
}

// Entries returns the visible entries in display order.
func (p *Pane) Entries() ([]types.Entry, error) {
	return p.pipeline.Entries()
}

// Cursor returns the current cursor row.
func (p *Pane) Cursor() int {
	return p.cursor
}

// MoveCursor moves the cursor by delta, clamped to the visible rows.
func (p *Pane) MoveCursor(delta int) {
	p.cursor += delta
	p.clampCursor()
}

// Selected resolves the entry under the cursor. NotFound when the pane is
// empty or the entry vanished.
func (p *Pane) Selected() (types.Entry, error) {
	if p.RowCount() == 0 {
		return types.Entry{}, errors.NewFileError("nothing selected", p.Directory(), errors.NotFound, nil)
	}
	return p.pipeline.EntryAt(p.cursor)
}

// SelectPath puts the cursor on path if it is currently visible.
func (p *Pane) SelectPath(path string) {
	if row, err := p.pipeline.RowForPath(path); err == nil {
		p.cursor = row
	}
}

// Watcher returns the pane's directory watcher, nil in headless use.
func (p *Pane) Watcher() *source.Watcher {
	return p.watcher
}

func (p *Pane) clampCursor() {
	if max := p.RowCount() - 1; p.cursor > max {
		p.cursor = max
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}
