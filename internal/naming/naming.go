// Package naming implements the on-disk enabled/disabled convention: an
// entry is disabled iff its base name carries a literal "DISABLED_" prefix
// (case-insensitive on read, canonical case on write). This package is the
// single source of truth for that convention; no other package inspects raw
// names for the marker.
package naming

import (
	"os"
	"path/filepath"
	"strings"

	"twopane/internal/errors"
	"twopane/internal/log"
)

// Marker is the canonical disable prefix written on toggle.
const Marker = "DISABLED_"

// IsDisabled reports whether rawName carries the disable marker.
func IsDisabled(rawName string) bool {
	return len(rawName) >= len(Marker) &&
		strings.EqualFold(rawName[:len(Marker)], Marker)
}

// EffectiveName returns the display name for rawName: the marker dropped if
// present, then leading and trailing underscores trimmed. The trim applies
// to enabled names too, and deliberately also eats underscores that were
// part of the original name; that matches the on-disk convention other
// tools scanning the same directories follow.
func EffectiveName(rawName string) string {
	if IsDisabled(rawName) {
		rawName = rawName[len(Marker):]
	}
	return strings.Trim(rawName, "_")
}

// EnabledName returns the raw name a disabled entry gets when re-enabled.
// For an already-enabled name it returns the name unchanged.
func EnabledName(rawName string) string {
	if !IsDisabled(rawName) {
		return rawName
	}
	return strings.Trim(rawName[len(Marker):], "_")
}

// DisabledName returns the raw name an enabled entry gets when disabled.
// For an already-disabled name it returns the name unchanged.
func DisabledName(rawName string) string {
	if IsDisabled(rawName) {
		return rawName
	}
	return Marker + rawName
}

// ToggledName returns the raw name after flipping the enabled/disabled state.
func ToggledName(rawName string) string {
	if IsDisabled(rawName) {
		return EnabledName(rawName)
	}
	return DisabledName(rawName)
}

// Toggle flips the enabled/disabled state of the entry at path by renaming
// it in place, and returns the new path. It fails with a RenameConflict
// error if a sibling with the target name already exists, and with an
// IOFailure error for any other rename problem; in both cases the original
// entry is left untouched.
func Toggle(path string) (string, error) {
	dir := filepath.Dir(path)
	oldName := filepath.Base(path)
	newName := ToggledName(oldName)
	newPath := filepath.Join(dir, newName)

	if newPath == path {
		return path, nil
	}

	if _, err := os.Lstat(newPath); err == nil {
		return "", errors.NewFileError("toggle target already exists", newPath, errors.RenameConflict, nil)
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", errors.NewFileError("toggle rename failed", path, errors.IOFailure, err)
	}

	log.LogWithFields(log.F("from", oldName), log.F("to", newName)).Debug("toggled entry")
	return newPath, nil
}
