// Package source exposes a live one-level view of a directory: the only
// package that talks to the real file system for listings. Layers above it
// re-order and re-filter what it returns; entries are materialized fresh on
// every query and never cached across a mutation.
package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"twopane/internal/config"
	"twopane/internal/errors"
	"twopane/internal/naming"
	"twopane/pkg/types"
)

// Source lists directory children as pipeline entries. The zero value hides
// dotfiles; construct via NewWithConfig to honor hide patterns too.
type Source struct {
	showHidden   bool
	hidePatterns []glob.Glob
}

// New creates a Source that hides dotfiles and applies no glob patterns.
func New() *Source {
	return &Source{}
}

// NewWithConfig creates a Source honoring the display settings.
func NewWithConfig(cfg *config.Config) *Source {
	return &Source{
		showHidden:   cfg.Display.ShowHidden,
		hidePatterns: cfg.CompiledHidePatterns(),
	}
}

// Children returns the entries directly under dir. Order is unspecified;
// the sort layer re-orders. Hidden and pattern-matched names are dropped
// before anything above the source sees them.
func (s *Source) Children(dir string) ([]types.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("directory not found", dir, errors.NotFound, err)
		}
		return nil, errors.NewFileError("could not list directory", dir, errors.IOFailure, err)
	}

	out := make([]types.Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if s.hidden(name) {
			continue
		}
		entry, err := s.materialize(filepath.Join(dir, name))
		if err != nil {
			// Deleted between ReadDir and Stat; normal during churn.
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

// Entry materializes the entry at path by re-querying the file system.
func (s *Source) Entry(path string) (types.Entry, error) {
	return s.materialize(path)
}

// IndexOf returns the position of path within children, or a NotFound error
// when it is not there. Comparison is on the normalized path.
func IndexOf(children []types.Entry, path string) (int, error) {
	clean := filepath.Clean(path)
	for i, e := range children {
		if filepath.Clean(e.Path) == clean {
			return i, nil
		}
	}
	return 0, errors.NewFileError("entry not in listing", path, errors.NotFound, nil)
}

func (s *Source) materialize(path string) (types.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Entry{}, errors.NewFileError("entry not found", path, errors.NotFound, err)
		}
		return types.Entry{}, errors.NewFileError("could not stat entry", path, errors.IOFailure, err)
	}

	rawName := filepath.Base(path)
	return types.Entry{
		Path:          path,
		RawName:       rawName,
		EffectiveName: naming.EffectiveName(rawName),
		IsDir:         info.IsDir(),
		Size:          info.Size(),
		ModTime:       info.ModTime(),
		Disabled:      naming.IsDisabled(rawName),
	}, nil
}

func (s *Source) hidden(name string) bool {
	if !s.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range s.hidePatterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}
