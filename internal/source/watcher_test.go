package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.SetDirectory(dir))
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w
}

func waitForChange(t *testing.T, w *Watcher, path string) Change {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case c := <-w.Changes():
			if path == "" || c.Path == path {
				return c
			}
		case <-deadline:
			t.Fatalf("timed out waiting for change on %s", path)
		}
	}
}

func TestWatcherReportsCreate(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	path := filepath.Join(dir, "new_file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	c := waitForChange(t, w, path)
	assert.Equal(t, path, c.Path)
	assert.False(t, c.Timestamp.IsZero())
}

func TestWatcherReportsRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "armor")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0644))

	w := startWatcher(t, dir)

	newPath := filepath.Join(dir, "DISABLED_armor")
	require.NoError(t, os.Rename(oldPath, newPath))

	// A rename shows up as events on either the old or the new name; the
	// consumer only needs to learn that the listing is stale.
	waitForChange(t, w, "")
}

func TestSetDirectorySwitchesWatch(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	w := startWatcher(t, dirA)

	require.NoError(t, w.SetDirectory(dirB))
	assert.Equal(t, dirB, w.Directory())

	path := filepath.Join(dirB, "in_b")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	waitForChange(t, w, path)
}

func TestSetDirectoryRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.SetDirectory(file))
	assert.Error(t, w.SetDirectory(filepath.Join(dir, "missing")))
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop()
}
