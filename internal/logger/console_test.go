package logger

import (
	"bytes"
	"testing"

	"github.com/harrison/zgrep/internal/grepcore"
	"github.com/harrison/zgrep/internal/style"
	"github.com/stretchr/testify/assert"
)

func TestConsoleMatchFormats(t *testing.T) {
	m := grepcore.Match{Path: "d/a.txt", LineNumber: 2, Text: "bar foo"}

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"text only", Format{}, "bar foo\n"},
		{"line number", Format{WithLineNumber: true}, "2:bar foo\n"},
		{"path", Format{WithPath: true}, "d/a.txt:bar foo\n"},
		{"path and line number", Format{WithPath: true, WithLineNumber: true}, "d/a.txt:2:bar foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf, style.Plain{}).Match(m, tt.format)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleMatchColored(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, style.NewColorStyler())

	c.Match(grepcore.Match{Path: "a.txt", LineNumber: 7, Text: "foo"}, Format{WithPath: true, WithLineNumber: true})

	out := buf.String()
	assert.Contains(t, out, "\x1b[34ma.txt\x1b[0m:")
	assert.Contains(t, out, "\x1b[31m7\x1b[0m:")
	assert.Contains(t, out, "foo\n")
}

func TestConsoleCount(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, nil).Count(42)
	assert.Equal(t, "42\n", buf.String())
}

func TestConsoleWarn(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, nil).Warn(&grepcore.FileError{Path: "a.txt", Reason: grepcore.ReasonFileNotFound})
	assert.Equal(t, "zgrep: FILE ERROR: a.txt : File not found\n", buf.String())
}

func TestConsoleNotice(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, nil).Notice("d/sub")
	assert.Equal(t, "\"d/sub\" : IS DIRECTORY\n", buf.String())
}

func TestConsoleNilWriterDiscards(t *testing.T) {
	c := NewConsole(nil, nil)
	assert.NotPanics(t, func() {
		c.Count(1)
		c.Notice("d")
	})
}
