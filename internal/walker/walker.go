// Package walker enumerates the files under a directory.
package walker

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/harrison/zgrep/internal/fsys"
	"github.com/harrison/zgrep/internal/grepcore"
	"github.com/spf13/afero"
)

// Notifier receives the subdirectories skipped by a shallow walk.
type Notifier interface {
	Notice(dir string)
}

// Walker collects file paths from a filesystem.
type Walker struct {
	fs       afero.Fs
	notifier Notifier
}

// New creates a Walker. A nil notifier drops skipped-directory notices.
func New(fs afero.Fs, notifier Notifier) *Walker {
	return &Walker{fs: fs, notifier: notifier}
}

// Collect returns the files in dir in enumeration order.
//
// With fullDepth false only direct file children are returned and each
// subdirectory is reported to the Notifier. With fullDepth true every
// subdirectory is descended depth-first and its files are flattened into the
// result. Directories never appear in the result.
//
// A failure to read an entry while listing any directory aborts the whole
// walk with an EntryError.
func (w *Walker) Collect(dir string, fullDepth bool) ([]string, error) {
	if !utf8.ValidString(dir) {
		return nil, &grepcore.PathError{Path: dir}
	}
	if !fsys.IsDir(w.fs, dir) {
		return nil, &grepcore.FileError{Path: dir, Reason: grepcore.ReasonNotADirectory}
	}

	names, err := w.readNames(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, name := range names {
		entry := filepath.Join(dir, name)
		isDir := fsys.IsDir(w.fs, entry)
		switch {
		case isDir && fullDepth:
			nested, err := w.Collect(entry, fullDepth)
			if err != nil {
				return nil, err
			}
			files = append(files, nested...)
		case isDir:
			if w.notifier != nil {
				w.notifier.Notice(entry)
			}
		default:
			files = append(files, entry)
		}
	}
	return files, nil
}

// readNames lists the entry names of dir sorted by name.
// The directory handle is released before returning.
func (w *Walker) readNames(dir string) ([]string, error) {
	f, err := w.fs.Open(dir)
	if err != nil {
		reason := grepcore.ReasonDirUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			reason = grepcore.ReasonDirNotFound
		}
		return nil, &grepcore.FileError{Path: dir, Reason: reason, Cause: err}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &grepcore.EntryError{Dir: dir, Cause: err}
	}
	sort.Strings(names)
	return names, nil
}
