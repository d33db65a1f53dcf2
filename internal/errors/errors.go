// Package errors provides standardized error handling for the twopane
// application. It defines the error kinds shared by the view pipeline, the
// naming toggle and the tag store, plus helper functions for consistent
// error creation, wrapping, and inspection across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// NotFound covers rows and paths that are no longer resolvable. It is
	// expected during concurrent file-system change and is recovered
	// locally by the pipeline, never surfaced to the consumer.
	NotFound
	// RenameConflict means a toggle target name collides with an existing
	// sibling; the original entry is left untouched.
	RenameConflict
	// IOFailure covers rename/copy/move/delete failures at the OS level.
	IOFailure
	// InvalidPath covers paths that cannot be normalized
	InvalidPath
	// CorruptStore means the tag document failed to parse; the store
	// degrades to empty rather than refusing to start.
	CorruptStore
	// PersistFailure means the tag document could not be written; the
	// in-memory state stays updated regardless.
	PersistFailure
	// InvalidConfig covers configuration validation failures
	InvalidConfig
)

// Common error constants for frequently occurring errors
var (
	ErrNotFound    = NewFileError("entry not found", "", NotFound, nil)
	ErrInvalidPath = NewFileError("invalid file path", "", InvalidPath, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file-system objects
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// StoreError represents errors related to the tag store document
type StoreError struct {
	ApplicationError
	storagePath string
}

// NewStoreError creates a new tag store error
func NewStoreError(msg string, storagePath string, kind ErrorKind, err error) *StoreError {
	return &StoreError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		storagePath: storagePath,
	}
}

// Error returns the store error message
func (e *StoreError) Error() string {
	if e.storagePath != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.storagePath, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.storagePath)
	}
	return e.ApplicationError.Error()
}

// StoragePath returns the document path associated with the error
func (e *StoreError) StoragePath() string {
	return e.storagePath
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the error kind from the chain. Wrapping adds Unknown-kind
// context errors on top, so the walk skips those rather than stopping at the
// first match.
func kindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsNotFound checks if the error marks a row or path that is no longer
// resolvable
func IsNotFound(err error) bool {
	return kindOf(err) == NotFound
}

// IsRenameConflict checks if the error is a toggle name collision
func IsRenameConflict(err error) bool {
	return kindOf(err) == RenameConflict
}

// IsIOFailure checks if the error is an OS-level file operation failure
func IsIOFailure(err error) bool {
	return kindOf(err) == IOFailure
}

// IsCorruptStore checks if the error is a tag document parse failure
func IsCorruptStore(err error) bool {
	return kindOf(err) == CorruptStore
}

// IsPersistFailure checks if the error is a tag document write failure
func IsPersistFailure(err error) bool {
	return kindOf(err) == PersistFailure
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}
