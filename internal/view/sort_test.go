package view

import (
	"testing"
	"time"

	"twopane/internal/errors"
	"twopane/internal/naming"
	"twopane/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(rawName string) types.Entry {
	return types.Entry{
		Path:          "/m/" + rawName,
		RawName:       rawName,
		EffectiveName: naming.EffectiveName(rawName),
		Disabled:      naming.IsDisabled(rawName),
		ModTime:       time.Now(),
	}
}

func sortedNames(t *testing.T, l *SortLayer) []string {
	t.Helper()
	out := make([]string, l.RowCount())
	for row := range out {
		e, err := l.Entry(row)
		require.NoError(t, err)
		out[row] = e.RawName
	}
	return out
}

func TestSortByEffectiveName(t *testing.T) {
	l := NewSortLayer()
	l.Refresh([]types.Entry{entry("Foo"), entry("DISABLED_Bar"), entry("baz")})

	// Case-insensitive effective names: Bar (disabled), baz, Foo.
	assert.Equal(t, []string{"DISABLED_Bar", "baz", "Foo"}, sortedNames(t, l))
}

func TestSortOrderStableAcrossToggle(t *testing.T) {
	l := NewSortLayer()
	l.Refresh([]types.Entry{entry("Foo"), entry("DISABLED_Bar"), entry("baz")})

	// Toggling DISABLED_Bar -> Bar leaves the effective name, and with it
	// the position, unchanged; only the disabled flag flips.
	l.Refresh([]types.Entry{entry("Foo"), entry("Bar"), entry("baz")})
	assert.Equal(t, []string{"Bar", "baz", "Foo"}, sortedNames(t, l))

	e, err := l.Entry(0)
	require.NoError(t, err)
	assert.False(t, e.Disabled)
}

func TestSortTieBreakByRawName(t *testing.T) {
	// A disabled counterpart of a differently-cased original shares an
	// effective name; raw name keeps the order deterministic.
	l := NewSortLayer()
	l.Refresh([]types.Entry{entry("DISABLED_armor"), entry("Armor")})
	first := sortedNames(t, l)

	l.Refresh([]types.Entry{entry("Armor"), entry("DISABLED_armor")})
	assert.Equal(t, first, sortedNames(t, l), "order must not depend on source order")
	assert.Equal(t, []string{"Armor", "DISABLED_armor"}, first)
}

func TestMapRoundTrip(t *testing.T) {
	l := NewSortLayer()
	l.Refresh([]types.Entry{entry("c"), entry("a"), entry("b")})

	for row := 0; row < l.RowCount(); row++ {
		src, err := l.MapToSource(row)
		require.NoError(t, err)
		back, err := l.MapFromSource(src)
		require.NoError(t, err)
		assert.Equal(t, row, back)
	}
}

func TestMapOutOfRange(t *testing.T) {
	l := NewSortLayer()
	l.Refresh([]types.Entry{entry("a")})

	for _, row := range []int{-1, 1, 99} {
		_, err := l.MapToSource(row)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err), "row %d", row)

		_, err = l.MapFromSource(row)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err), "source row %d", row)
	}
}

func TestRemovedIndexIsNotFound(t *testing.T) {
	l := NewSortLayer()
	l.Refresh([]types.Entry{entry("a"), entry("b")})

	// After the listing shrinks, a remembered index must fail loudly
	// instead of resolving to some other entry.
	l.Refresh([]types.Entry{entry("a")})
	_, err := l.MapFromSource(1)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
