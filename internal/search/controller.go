// Package search runs one zgrep invocation.
//
// Controller dispatches a SearchOptions value to the file scanner, alone or
// after a directory walk, picks listing or counting output, and turns
// per-file failures into printed warnings so one bad file never stops the
// rest of a directory search.
package search

import (
	"github.com/harrison/zgrep/internal/grepcore"
	"github.com/harrison/zgrep/internal/logger"
	"github.com/harrison/zgrep/internal/options"
)

// fileScanner reads one file and matches its lines.
type fileScanner interface {
	Scan(path, pattern string) ([]grepcore.Match, error)
	Count(path, pattern string) (int, error)
}

// dirWalker lists the files of a directory.
type dirWalker interface {
	Collect(dir string, fullDepth bool) ([]string, error)
}

// reporter prints results and warnings.
type reporter interface {
	Match(m grepcore.Match, f logger.Format)
	Count(n int)
	Warn(err error)
}

// Summary is the aggregate of a run.
type Summary struct {
	Files    int // files scanned successfully
	Matches  int // lines printed, or lines counted in counting mode
	Failures int // errors printed
}

// Controller orchestrates a single search.
type Controller struct {
	scanner fileScanner
	walker  dirWalker
	out     reporter
}

// NewController creates a Controller with injected collaborators.
func NewController(scanner fileScanner, walker dirWalker, out reporter) *Controller {
	return &Controller{scanner: scanner, walker: walker, out: out}
}

// Run performs the search described by opts and prints its output.
// Errors are printed, never returned: the caller's exit status does not
// depend on them.
func (c *Controller) Run(opts options.SearchOptions) Summary {
	if opts.Walks() {
		return c.runDirectory(opts)
	}
	return c.runFile(opts)
}

func (c *Controller) runDirectory(opts options.SearchOptions) Summary {
	var sum Summary

	files, err := c.walker.Collect(opts.TargetPath, opts.FullDepth())
	if err != nil {
		c.fail(&sum, err)
		return sum
	}

	format := logger.Format{WithPath: true, WithLineNumber: opts.ShowLineNumbers}
	for _, file := range files {
		if opts.CountOnly {
			n, err := c.scanner.Count(file, opts.Pattern)
			if err != nil {
				c.fail(&sum, err)
				continue
			}
			sum.Files++
			sum.Matches += n
			continue
		}

		c.list(&sum, file, opts.Pattern, format)
	}

	if opts.CountOnly {
		c.out.Count(sum.Matches)
	}
	return sum
}

func (c *Controller) runFile(opts options.SearchOptions) Summary {
	var sum Summary

	if opts.CountOnly {
		n, err := c.scanner.Count(opts.TargetPath, opts.Pattern)
		if err != nil {
			c.fail(&sum, err)
			return sum
		}
		sum.Files++
		sum.Matches = n
		c.out.Count(n)
		return sum
	}

	c.list(&sum, opts.TargetPath, opts.Pattern, logger.Format{WithLineNumber: opts.ShowLineNumbers})
	return sum
}

// list prints the matches of one file, or a warning if it cannot be read.
func (c *Controller) list(sum *Summary, file, pattern string, format logger.Format) {
	matches, err := c.scanner.Scan(file, pattern)
	if err != nil {
		c.fail(sum, err)
		return
	}
	sum.Files++
	for _, m := range matches {
		c.out.Match(m, format)
	}
	sum.Matches += len(matches)
}

func (c *Controller) fail(sum *Summary, err error) {
	sum.Failures++
	c.out.Warn(err)
}
