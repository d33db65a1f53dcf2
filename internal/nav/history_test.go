package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyHistory(t *testing.T) {
	h := New()
	assert.Equal(t, "", h.Current())
	assert.False(t, h.CanBack())
	assert.False(t, h.CanForward())

	_, ok := h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestBackAndForward(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/a/b")
	h.Push("/a/b/c")

	path, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/a/b", path)

	path, ok = h.Back()
	require.True(t, ok)
	assert.Equal(t, "/a", path)
	assert.False(t, h.CanBack())

	path, ok = h.Forward()
	require.True(t, ok)
	assert.Equal(t, "/a/b", path)
	assert.True(t, h.CanForward())
}

func TestPushTruncatesForwardEntries(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/b")
	h.Push("/c")

	_, ok := h.Back()
	require.True(t, ok)
	_, ok = h.Back()
	require.True(t, ok)
	require.Equal(t, "/a", h.Current())

	h.Push("/d")
	assert.Equal(t, "/d", h.Current())
	assert.False(t, h.CanForward(), "push must drop the old forward entries")
	assert.Equal(t, 2, h.Len())
}

func TestPushCurrentIsSuppressed(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/a")
	h.Push("/a")

	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanBack())

	// Only a push equal to the *current* path is suppressed; revisiting an
	// older path is a real navigation.
	h.Push("/b")
	h.Push("/a")
	assert.Equal(t, 3, h.Len())
}
