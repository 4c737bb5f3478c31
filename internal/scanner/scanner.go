// Package scanner finds lines containing a literal pattern in a single file.
package scanner

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/harrison/zgrep/internal/grepcore"
	"github.com/spf13/afero"
)

// Scanner reads whole files from a filesystem and matches their lines.
type Scanner struct {
	fs afero.Fs
}

// New creates a Scanner over fs.
func New(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

// Scan returns every line of path that contains pattern, in ascending
// line order. Matching is a case-sensitive substring test; an empty pattern
// matches every line.
func (s *Scanner) Scan(path, pattern string) ([]grepcore.Match, error) {
	text, err := s.read(path)
	if err != nil {
		return nil, err
	}

	var matches []grepcore.Match
	eachLine(text, func(n int, line string) {
		if strings.Contains(line, pattern) {
			matches = append(matches, grepcore.Match{Path: path, LineNumber: n, Text: line})
		}
	})
	return matches, nil
}

// Count returns the number of lines of path that contain pattern.
func (s *Scanner) Count(path, pattern string) (int, error) {
	text, err := s.read(path)
	if err != nil {
		return 0, err
	}

	count := 0
	eachLine(text, func(_ int, line string) {
		if strings.Contains(line, pattern) {
			count++
		}
	})
	return count, nil
}

// read loads path fully and checks it is UTF-8 text.
func (s *Scanner) read(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", &grepcore.PathError{Path: path}
	}

	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", classify(path, err)
	}
	if !utf8.Valid(content) {
		return "", &grepcore.FileError{Path: path, Reason: grepcore.ReasonInvalidData}
	}
	return string(content), nil
}

// classify maps an I/O failure to a FileError reason.
func classify(path string, err error) *grepcore.FileError {
	reason := grepcore.ReasonUnknownFile
	switch {
	case errors.Is(err, fs.ErrNotExist):
		reason = grepcore.ReasonFileNotFound
	case errors.Is(err, syscall.EINVAL), errors.Is(err, fs.ErrInvalid):
		reason = grepcore.ReasonUnreadableInput
	}
	return &grepcore.FileError{Path: path, Reason: reason, Cause: err}
}

// eachLine calls fn for every line of text with its 1-based number.
// Lines end at "\n" with an optional preceding "\r"; a trailing newline
// does not start an extra empty line.
func eachLine(text string, fn func(n int, line string)) {
	n := 0
	for len(text) > 0 {
		n++
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		fn(n, strings.TrimSuffix(line, "\r"))
	}
}
