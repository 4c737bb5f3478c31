// Package grepcore holds the error catalog shared by every zgrep component.
//
// The set of variants is closed: FileError, ArgError, OptionError, PathError
// and EntryError. Each carries typed fields and Render turns any of them into
// the text shown to the user.
package grepcore

import (
	"errors"
	"fmt"
)

// Reason describes why a file or directory could not be read.
type Reason string

const (
	ReasonFileNotFound    Reason = "File not found"
	ReasonInvalidData     Reason = "Invalid data"
	ReasonUnreadableInput Reason = "Unreadable input"
	ReasonUnknownFile     Reason = "Unknown file error"
	ReasonNotADirectory   Reason = "Not a directory"
	ReasonDirNotFound     Reason = "Directory not found"
	ReasonDirUnreadable   Reason = "Error while getting directory contents"
)

// ExpectedPositionalArgs is the number of non-option tokens: pattern and path.
const ExpectedPositionalArgs = 2

// grepError is implemented by every variant of the catalog.
type grepError interface {
	error
	// Fatal reports whether the error must stop the process.
	Fatal() bool
}

// FileError is returned when a file or directory cannot be opened or decoded.
type FileError struct {
	Path   string
	Reason Reason
	Cause  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
func (e *FileError) Unwrap() error { return e.Cause }
func (e *FileError) Fatal() bool   { return false }

// ArgError is returned when the number of positional arguments is wrong.
type ArgError struct {
	Expected int
	Received int
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("expected %d arguments, received %d", e.Expected, e.Received)
}
func (e *ArgError) Fatal() bool { return true }

// OptionError is returned for an unrecognized flag token.
type OptionError struct {
	Token string
}

func (e *OptionError) Error() string {
	return "unknown option: " + e.Token
}
func (e *OptionError) Fatal() bool { return true }

// PathError is returned when a path cannot be displayed as UTF-8 text.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path is not valid UTF-8: %q", e.Path)
}
func (e *PathError) Fatal() bool { return false }

// EntryError is returned when reading a directory's entries fails part way.
// It aborts the whole traversal.
type EntryError struct {
	Dir   string
	Cause error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("failed to read entries of %s: %v", e.Dir, e.Cause)
}
func (e *EntryError) Unwrap() error { return e.Cause }
func (e *EntryError) Fatal() bool   { return false }

var (
	_ grepError = (*FileError)(nil)
	_ grepError = (*ArgError)(nil)
	_ grepError = (*OptionError)(nil)
	_ grepError = (*PathError)(nil)
	_ grepError = (*EntryError)(nil)
)

// IsFatal reports whether err belongs to the catalog and must end the process.
// Errors from outside the catalog are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var ge grepError
	if errors.As(err, &ge) {
		return ge.Fatal()
	}
	return true
}
