package view

import (
	"sort"
	"strings"

	"twopane/pkg/types"
)

// SortLayer presents a snapshot of source entries in ascending order by
// effective name, case-insensitive, with ties broken by raw name. The tie
// break matters: a disabled counterpart of a differently-cased sibling can
// share an effective name, and the order must stay deterministic across
// re-sorts.
type SortLayer struct {
	entries    []types.Entry
	toSource   []int
	fromSource []int
}

// NewSortLayer creates an empty sort layer; Refresh installs a snapshot.
func NewSortLayer() *SortLayer {
	return &SortLayer{}
}

// Refresh replaces the snapshot and re-sorts eagerly. The pipeline calls
// this on every change notification under the observed directory.
func (l *SortLayer) Refresh(entries []types.Entry) {
	l.entries = entries
	l.toSource = make([]int, len(entries))
	for i := range l.toSource {
		l.toSource[i] = i
	}
	sort.SliceStable(l.toSource, func(a, b int) bool {
		return lessEntry(entries[l.toSource[a]], entries[l.toSource[b]])
	})

	l.fromSource = make([]int, len(entries))
	for row, src := range l.toSource {
		l.fromSource[src] = row
	}
}

// RowCount returns the number of sorted rows.
func (l *SortLayer) RowCount() int {
	return len(l.toSource)
}

// MapToSource translates a sorted row to its source index.
func (l *SortLayer) MapToSource(row int) (int, error) {
	if row < 0 || row >= len(l.toSource) {
		return 0, rowOutOfRange(row)
	}
	return l.toSource[row], nil
}

// MapFromSource translates a source index to its sorted row. An index for
// an entry that has since been removed gets a NotFound error, never a stale
// guess.
func (l *SortLayer) MapFromSource(sourceRow int) (int, error) {
	if sourceRow < 0 || sourceRow >= len(l.fromSource) {
		return 0, rowOutOfRange(sourceRow)
	}
	return l.fromSource[sourceRow], nil
}

// Entry returns the snapshot entry at a sorted row.
func (l *SortLayer) Entry(row int) (types.Entry, error) {
	src, err := l.MapToSource(row)
	if err != nil {
		return types.Entry{}, err
	}
	return l.entries[src], nil
}

func lessEntry(a, b types.Entry) bool {
	ae := strings.ToLower(a.EffectiveName)
	be := strings.ToLower(b.EffectiveName)
	if ae != be {
		return ae < be
	}
	return a.RawName < b.RawName
}
