// Package style renders text with named color attributes.
//
// Colors are cosmetic: every Styler must return text whose visible content
// is the input unchanged. Plain is the no-op renderer used by tests and
// non-terminal output.
package style

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Attribute names a role a piece of output plays.
type Attribute int

const (
	// Path is a file path prefixed to a match.
	Path Attribute = iota
	// LineNumber is the 1-based line number prefixed to a match.
	LineNumber
	// ErrorPath is a path shown inside an error message.
	ErrorPath
	// Notice is an informational side-channel message.
	Notice
)

// Styler renders text with a named attribute.
type Styler interface {
	Paint(text string, attr Attribute) string
}

// Plain returns text untouched.
type Plain struct{}

func (Plain) Paint(text string, _ Attribute) string { return text }

// ColorStyler renders attributes as ANSI colors.
// Path: blue, LineNumber: red, ErrorPath: red, Notice: yellow.
type ColorStyler struct {
	colors map[Attribute]*color.Color
}

// NewColorStyler creates a ColorStyler that always emits escape codes.
// Callers decide whether the destination supports color; see Auto.
func NewColorStyler() *ColorStyler {
	colors := map[Attribute]*color.Color{
		Path:       color.New(color.FgBlue),
		LineNumber: color.New(color.FgRed),
		ErrorPath:  color.New(color.FgRed),
		Notice:     color.New(color.FgYellow),
	}
	for _, c := range colors {
		c.EnableColor()
	}
	return &ColorStyler{colors: colors}
}

func (s *ColorStyler) Paint(text string, attr Attribute) string {
	c, ok := s.colors[attr]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Auto picks a ColorStyler when w is a terminal and Plain otherwise.
// NO_COLOR disables color through fatih/color's global switch.
func Auto(w io.Writer) Styler {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return Plain{}
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColorStyler()
	}
	return Plain{}
}
