// Package fsys provides the filesystem zgrep reads from.
//
// Production code uses the operating system filesystem wrapped read-only;
// tests substitute afero.NewMemMapFs or a failing wrapper.
package fsys

import (
	"github.com/spf13/afero"
)

// New returns the read-only OS filesystem.
func New() afero.Fs {
	return afero.NewReadOnlyFs(afero.NewOsFs())
}

// IsDir reports whether path names a directory, following symlinks.
// Any stat failure counts as "not a directory".
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
