// Package fileops implements the file operations the panes issue below the
// view pipeline: create folder, delete, and clipboard-style copy or move
// between directories. Every operation reports IOFailure errors with the
// path that failed; invalidation of the views happens through the normal
// change-notification path, never from here.
package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"twopane/internal/errors"
	"twopane/internal/log"
)

// CreateFolder creates a directory under parent and returns its path.
func CreateFolder(parent, name string) (string, error) {
	path := filepath.Join(parent, name)
	if _, err := os.Lstat(path); err == nil {
		return "", errors.NewFileError("folder already exists", path, errors.RenameConflict, nil)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		return "", errors.NewFileError("could not create folder", path, errors.IOFailure, err)
	}
	log.LogWithFields(log.F("path", path)).Info("created folder")
	return path, nil
}

// Delete removes the entry at path; directories are removed recursively.
func Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("entry not found", path, errors.NotFound, err)
		}
		return errors.NewFileError("could not stat entry", path, errors.IOFailure, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return errors.NewFileError("could not delete entry", path, errors.IOFailure, err)
	}
	log.LogWithFields(log.F("path", path)).Info("deleted entry")
	return nil
}

// CopyInto copies the entry at src into destDir, keeping its base name but
// renaming to a unique sibling on collision. Returns the destination path.
func CopyInto(src, destDir string) (string, error) {
	dest, err := uniqueDestName(filepath.Join(destDir, filepath.Base(src)))
	if err != nil {
		return "", err
	}

	info, err := os.Lstat(src)
	if err != nil {
		return "", errors.NewFileError("copy source not found", src, errors.NotFound, err)
	}

	if info.IsDir() {
		err = copyDir(src, dest)
	} else {
		err = copyFile(src, dest, info.Mode())
	}
	if err != nil {
		return "", err
	}
	log.LogWithFields(log.F("from", src), log.F("to", dest)).Info("copied entry")
	return dest, nil
}

// MoveInto moves the entry at src into destDir, renaming to a unique
// sibling on collision. A cross-device rename falls back to copy+delete.
func MoveInto(src, destDir string) (string, error) {
	target := filepath.Join(destDir, filepath.Base(src))
	if filepath.Clean(src) == filepath.Clean(target) {
		// Moving an entry onto itself is not an error, just a no-op.
		return src, nil
	}
	dest, err := uniqueDestName(target)
	if err != nil {
		return "", err
	}

	if err := os.Rename(src, dest); err != nil {
		// EXDEV and friends: fall back to a copy and remove the original.
		copied, copyErr := CopyInto(src, destDir)
		if copyErr != nil {
			return "", errors.NewFileError("could not move entry", src, errors.IOFailure, err)
		}
		if err := Delete(src); err != nil {
			return "", err
		}
		dest = copied
	}
	log.LogWithFields(log.F("from", src), log.F("to", dest)).Info("moved entry")
	return dest, nil
}

// uniqueDestName finds a sibling name that does not collide by appending a
// counter to the base name.
func uniqueDestName(originalPath string) (string, error) {
	if _, err := os.Lstat(originalPath); os.IsNotExist(err) {
		return originalPath, nil
	}

	ext := filepath.Ext(originalPath)
	base := originalPath[:len(originalPath)-len(ext)]

	for counter := 1; counter <= 1000; counter++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, counter, ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", errors.NewFileError("could not find unique destination name", originalPath, errors.IOFailure, nil)
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.NewFileError("could not open copy source", src, errors.IOFailure, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return errors.NewFileError("could not create copy destination", dest, errors.IOFailure, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.NewFileError("copy failed", dest, errors.IOFailure, err)
	}
	return nil
}

func copyDir(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.NewFileError("could not stat copy source", src, errors.IOFailure, err)
	}
	if err := os.MkdirAll(dest, info.Mode().Perm()); err != nil {
		return errors.NewFileError("could not create copy destination", dest, errors.IOFailure, err)
	}

	dirents, err := os.ReadDir(src)
	if err != nil {
		return errors.NewFileError("could not list copy source", src, errors.IOFailure, err)
	}
	for _, de := range dirents {
		srcChild := filepath.Join(src, de.Name())
		destChild := filepath.Join(dest, de.Name())
		if de.IsDir() {
			if err := copyDir(srcChild, destChild); err != nil {
				return err
			}
			continue
		}
		childInfo, err := de.Info()
		if err != nil {
			return errors.NewFileError("could not stat copy source", srcChild, errors.IOFailure, err)
		}
		if err := copyFile(srcChild, destChild, childInfo.Mode()); err != nil {
			return err
		}
	}
	return nil
}
