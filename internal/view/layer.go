// Package view implements the layered view-transformation pipeline between
// a raw directory listing and the rows a consumer displays: a sort layer, a
// filter layer, and the composition contract that lets them stack. Every
// layer translates row indices both ways; resolving a row to a path walks
// MapToSource down the chain, resolving a path to a row walks MapFromSource
// up and stops, without error, at the first layer that excludes it.
package view

import (
	"twopane/internal/errors"
	"twopane/pkg/types"
)

// Layer is the contract every view transform implements so that layers
// compose without special-casing. The chain shape is fixed at construction
// time; nothing discovers it at runtime.
type Layer interface {
	// RowCount returns the number of rows this layer currently presents.
	RowCount() int
	// MapToSource translates one of this layer's rows one step down.
	MapToSource(row int) (int, error)
	// MapFromSource translates a row of the layer beneath one step up. It
	// returns a NotFound error when this layer currently excludes the row;
	// for a filter that is the normal state of a filtered-out entry, not a
	// failure.
	MapFromSource(sourceRow int) (int, error)
}

// TagGetter is the read side of the tag store the filter predicate needs.
// Layers never cache what it returns; a tag written by one pane must be
// visible to the other on its next query.
type TagGetter interface {
	Get(path string) types.TagSet
}

func rowOutOfRange(row int) error {
	return errors.Wrapf(errors.ErrNotFound, "row %d out of range", row)
}
