// Package tags implements the durable tag store: a mapping from normalized
// absolute path to an ordered set of tag strings, backed by a single JSON
// document that is rewritten on every mutation. Because the process may be
// killed between UI actions, every mutating call persists before it returns;
// there is no separate flush step.
package tags

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"twopane/internal/errors"
	"twopane/internal/log"
	"twopane/pkg/types"
)

// DefaultFileName is the document name used when the config does not name
// one. It lives in the user's home directory so that both panes, and other
// tools scanning the same directories, share one store.
const DefaultFileName = ".tags.json"

// Store maps normalized paths to their tag sets. It is not safe for
// concurrent writers; the surrounding UI is single-threaded.
type Store struct {
	storagePath string
	tags        map[string]types.TagSet
}

// Normalize resolves "." and ".." segments and applies OS-native separators
// so that every spelling of a path hits the same store key. On Windows the
// comparison is additionally case-folded.
func Normalize(path string) string {
	p := filepath.Clean(filepath.FromSlash(path))
	if runtime.GOOS == "windows" {
		p = strings.ToLower(p)
	}
	return p
}

// Load reads the JSON document at storagePath. A missing file yields an
// empty store and no error. A malformed document yields an empty store and
// a CorruptStore error the caller can surface as a warning; the store is
// usable either way.
func Load(storagePath string) (*Store, error) {
	s := &Store{
		storagePath: storagePath,
		tags:        make(map[string]types.TagSet),
	}

	data, err := os.ReadFile(storagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.NewStoreError("could not read tag document", storagePath, errors.CorruptStore, err)
	}

	if err := json.Unmarshal(data, &s.tags); err != nil {
		s.tags = make(map[string]types.TagSet)
		return s, errors.NewStoreError("tag document is malformed", storagePath, errors.CorruptStore, err)
	}

	log.LogWithFields(log.F("path", storagePath), log.F("entries", len(s.tags))).Debug("loaded tag store")
	return s, nil
}

// StoragePath returns the document path this store persists to.
func (s *Store) StoragePath() string {
	return s.storagePath
}

// Len returns the number of tagged paths.
func (s *Store) Len() int {
	return len(s.tags)
}

// Get returns the tags for path, empty if none. The returned set is a copy;
// mutating it does not touch the store.
func (s *Store) Get(path string) types.TagSet {
	ts := s.tags[Normalize(path)]
	if len(ts) == 0 {
		return nil
	}
	out := make(types.TagSet, len(ts))
	copy(out, ts)
	return out
}

// Paths returns every tagged path currently in the store.
func (s *Store) Paths() []string {
	out := make([]string, 0, len(s.tags))
	for p := range s.tags {
		out = append(out, p)
	}
	return out
}

// Add appends tag to path's set and persists. Adding a tag that is already
// present is a no-op and does not touch the document.
func (s *Store) Add(path, tag string) error {
	key := Normalize(path)
	ts := s.tags[key]
	if ts.Contains(tag) {
		return nil
	}
	s.tags[key] = append(ts, tag)
	return s.save()
}

// Remove deletes tag from path's set and persists. Removing an absent tag
// is a no-op. When the last tag goes, the path key is deleted rather than
// kept with an empty list.
func (s *Store) Remove(path, tag string) error {
	key := Normalize(path)
	ts, ok := s.tags[key]
	if !ok || !ts.Contains(tag) {
		return nil
	}
	ts = ts.Remove(tag)
	if len(ts) == 0 {
		delete(s.tags, key)
	} else {
		s.tags[key] = ts
	}
	return s.save()
}

// Set replaces path's tag set wholesale, deduplicated in given order, and
// persists. An empty set deletes the key.
func (s *Store) Set(path string, tags []string) error {
	key := Normalize(path)
	ts := types.TagSet(tags).Dedup()
	if len(ts) == 0 {
		delete(s.tags, key)
	} else {
		s.tags[key] = ts
	}
	return s.save()
}

// save rewrites the whole document. On failure the in-memory map stays
// updated, so the current session remains consistent even when durability
// is lost; the caller gets a PersistFailure to surface.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.tags, "", "  ")
	if err != nil {
		return errors.NewStoreError("could not encode tag document", s.storagePath, errors.PersistFailure, err)
	}
	if err := os.WriteFile(s.storagePath, data, 0644); err != nil {
		return errors.NewStoreError("could not write tag document", s.storagePath, errors.PersistFailure, err)
	}
	return nil
}
