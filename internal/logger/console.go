// Package logger prints zgrep's line-oriented output.
//
// Console writes matches, counts, warnings and directory notices to a single
// writer. Color is chosen once at construction through a style.Styler so the
// same code path produces plain text under test.
package logger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/zgrep/internal/grepcore"
	"github.com/harrison/zgrep/internal/style"
)

// Format selects the prefixes printed in front of a matching line.
// The toggles are independent: path first, then line number, then text.
type Format struct {
	WithPath       bool
	WithLineNumber bool
}

// Console writes search output to a writer.
type Console struct {
	writer io.Writer
	styler style.Styler
}

// NewConsole creates a Console that writes to w.
// If w is nil, output is silently discarded. If s is nil, text is plain.
func NewConsole(w io.Writer, s style.Styler) *Console {
	if w == nil {
		w = io.Discard
	}
	if s == nil {
		s = style.Plain{}
	}
	return &Console{writer: w, styler: s}
}

// Match prints one matching line.
// Format: "[path:][line:]text"
func (c *Console) Match(m grepcore.Match, f Format) {
	var b strings.Builder
	if f.WithPath {
		b.WriteString(c.styler.Paint(m.Path, style.Path))
		b.WriteByte(':')
	}
	if f.WithLineNumber {
		b.WriteString(c.styler.Paint(strconv.Itoa(m.LineNumber), style.LineNumber))
		b.WriteByte(':')
	}
	b.WriteString(m.Text)
	c.println(b.String())
}

// Count prints a match total.
func (c *Console) Count(n int) {
	c.println(strconv.Itoa(n))
}

// Warn prints a recoverable error. The run continues.
func (c *Console) Warn(err error) {
	c.println(grepcore.Render(err, c.styler))
}

// Notice reports a subdirectory that a shallow walk did not enter.
// Format: "\"dir\" : IS DIRECTORY"
func (c *Console) Notice(dir string) {
	c.println(c.styler.Paint(fmt.Sprintf("%q : IS DIRECTORY", dir), style.Notice))
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.writer, line)
}
