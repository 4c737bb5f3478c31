// Package config holds the dependencies one zgrep process runs with.
//
// zgrep reads no configuration files or environment variables; Config is
// the wiring of output streams, filesystem and styling, built once in main
// and replaced field by field in tests.
package config

import (
	"io"
	"os"

	"github.com/harrison/zgrep/internal/fsys"
	"github.com/harrison/zgrep/internal/style"
	"github.com/spf13/afero"
)

// Config represents the runtime wiring of zgrep
type Config struct {
	// Stdout receives matches, counts, notices and per-file warnings
	Stdout io.Writer

	// Stderr receives fatal argument errors
	Stderr io.Writer

	// Fs is the filesystem searched
	Fs afero.Fs

	// Styler colors Stdout output
	Styler style.Styler
}

// DefaultConfig returns a Config bound to the process streams and the OS filesystem.
// Color is enabled only when stdout is a terminal.
func DefaultConfig() *Config {
	return &Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     fsys.New(),
		Styler: style.Auto(os.Stdout),
	}
}

// WithDefaults fills nil streams and filesystem from DefaultConfig and returns c.
// A missing Styler becomes plain text.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()
	if c.Stdout == nil {
		c.Stdout = def.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = def.Stderr
	}
	if c.Fs == nil {
		c.Fs = def.Fs
	}
	if c.Styler == nil {
		c.Styler = style.Plain{}
	}
	return c
}
