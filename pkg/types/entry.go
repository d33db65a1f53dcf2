package types

import (
	"fmt"
	"strings"
	"time"
)

// Entry represents one file-system object as seen through the view pipeline.
// Entries are materialized on demand from a path; they are never cached
// across a file-system mutation.
type Entry struct {
	Path          string    `json:"path"`
	RawName       string    `json:"raw_name"`
	EffectiveName string    `json:"effective_name"`
	IsDir         bool      `json:"is_dir"`
	Size          int64     `json:"size"`
	ModTime       time.Time `json:"mod_time"`
	Disabled      bool      `json:"disabled"`
}

// String returns a human-readable representation
func (e Entry) String() string {
	kind := "file"
	if e.IsDir {
		kind = "dir"
	}
	state := ""
	if e.Disabled {
		state = " (disabled)"
	}
	return fmt.Sprintf("%s [%s, %d bytes]%s", e.Path, kind, e.Size, state)
}

// TagSet holds the distinct tags attached to one path, in insertion order.
type TagSet []string

// Contains reports whether the set already holds tag (case-sensitive).
func (ts TagSet) Contains(tag string) bool {
	for _, t := range ts {
		if t == tag {
			return true
		}
	}
	return false
}

// Add returns the set with tag appended, or the set unchanged if the tag is
// already present.
func (ts TagSet) Add(tag string) TagSet {
	if ts.Contains(tag) {
		return ts
	}
	return append(ts, tag)
}

// Remove returns the set without tag. Removing an absent tag is a no-op.
func (ts TagSet) Remove(tag string) TagSet {
	for i, t := range ts {
		if t == tag {
			return append(ts[:i:i], ts[i+1:]...)
		}
	}
	return ts
}

// Dedup returns the set with duplicates dropped, keeping first occurrences.
func (ts TagSet) Dedup() TagSet {
	out := make(TagSet, 0, len(ts))
	for _, t := range ts {
		out = out.Add(t)
	}
	return out
}

// MatchesSubstring reports whether any tag contains needle, case-insensitive.
// An empty needle matches nothing here; the filter layer short-circuits that
// case before consulting tags.
func (ts TagSet) MatchesSubstring(needle string) bool {
	if needle == "" {
		return false
	}
	needle = strings.ToLower(needle)
	for _, t := range ts {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
