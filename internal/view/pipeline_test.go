package view

import (
	"os"
	"path/filepath"
	"testing"

	"twopane/internal/errors"
	"twopane/internal/naming"
	"twopane/internal/source"
	"twopane/internal/tags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, dir string) (*Pipeline, *tags.Store) {
	t.Helper()
	store, err := tags.Load(filepath.Join(t.TempDir(), "tags.json"))
	require.NoError(t, err)

	p := NewPipeline(source.New(), store)
	require.NoError(t, p.SetDirectory(dir))
	return p, store
}

func populate(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func displayedNames(t *testing.T, p *Pipeline) []string {
	t.Helper()
	entries, err := p.Entries()
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.RawName
	}
	return out
}

func TestPipelinePresentsSortedListing(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "Foo", "DISABLED_Bar", "baz")

	p, _ := newTestPipeline(t, dir)
	assert.Equal(t, []string{"DISABLED_Bar", "baz", "Foo"}, displayedNames(t, p))

	e, err := p.EntryAt(0)
	require.NoError(t, err)
	assert.True(t, e.Disabled)
	assert.Equal(t, "Bar", e.EffectiveName)
}

func TestStackedMappingRoundTrip(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "armor", "arms_cache", "banner", "DISABLED_army")

	p, _ := newTestPipeline(t, dir)
	p.SetSearch("arm")

	// Every visible row must survive the full down-and-up walk.
	for row := 0; row < p.RowCount(); row++ {
		e, err := p.EntryAt(row)
		require.NoError(t, err)
		back, err := p.RowForPath(e.Path)
		require.NoError(t, err)
		assert.Equal(t, row, back, "path %s", e.Path)
	}
}

func TestRowForPathFilteredOut(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "armor", "banner")

	p, _ := newTestPipeline(t, dir)
	p.SetSearch("armor")

	_, err := p.RowForPath(filepath.Join(dir, "banner"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "filtered out is NotFound, not failure")
	assert.False(t, p.Visible(filepath.Join(dir, "banner")))
	assert.True(t, p.Visible(filepath.Join(dir, "armor")))
}

func TestToggleKeepsOrderAndRefreshResolves(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "Foo", "DISABLED_Bar", "baz")

	p, _ := newTestPipeline(t, dir)
	require.Equal(t, []string{"DISABLED_Bar", "baz", "Foo"}, displayedNames(t, p))

	newPath, err := naming.Toggle(filepath.Join(dir, "DISABLED_Bar"))
	require.NoError(t, err)

	// The rename fires a change event in production; simulate its arrival.
	require.NoError(t, p.Refresh())

	assert.Equal(t, []string{"Bar", "baz", "Foo"}, displayedNames(t, p),
		"sort order is stable across a toggle")

	row, err := p.RowForPath(newPath)
	require.NoError(t, err)
	assert.Equal(t, 0, row)

	e, err := p.EntryAt(row)
	require.NoError(t, err)
	assert.False(t, e.Disabled)
}

func TestTagWriteVisibleWithoutPipelineRestart(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "x", "y")

	p, store := newTestPipeline(t, dir)
	p.SetSearch("arm")
	assert.Equal(t, 0, p.RowCount())

	// Tag lookups go straight to the store on every re-filter; nothing
	// caches the result inside the layers.
	require.NoError(t, store.Add(filepath.Join(dir, "x"), "armor"))
	p.SetSearch("")
	p.SetSearch("arm")
	assert.Equal(t, []string{"x"}, displayedNames(t, p))
}

func TestTwoPanesShareOneStore(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "x", "y")

	store, err := tags.Load(filepath.Join(t.TempDir(), "tags.json"))
	require.NoError(t, err)

	left := NewPipeline(source.New(), store)
	require.NoError(t, left.SetDirectory(dir))
	right := NewPipeline(source.New(), store)
	require.NoError(t, right.SetDirectory(dir))

	require.NoError(t, store.Add(filepath.Join(dir, "y"), "shield"))

	for name, p := range map[string]*Pipeline{"left": left, "right": right} {
		p.SetSearch("shield")
		assert.Equal(t, []string{"y"}, displayedNames(t, p), "pane %s", name)
	}
}

func TestNotifyCallbackFiresOnRefresh(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a")

	p, _ := newTestPipeline(t, dir)
	calls := 0
	p.SetNotify(func() { calls++ })

	require.NoError(t, p.Refresh())
	require.NoError(t, p.Refresh())
	assert.Equal(t, 2, calls)
}

func TestEntryAtStaleRow(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a", "b")

	p, _ := newTestPipeline(t, dir)
	require.Equal(t, 2, p.RowCount())

	require.NoError(t, os.Remove(filepath.Join(dir, "b")))
	require.NoError(t, p.Refresh())

	_, err := p.EntryAt(1)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
