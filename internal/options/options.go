// Package options turns zgrep's command-line tokens into SearchOptions.
package options

import (
	"errors"
	"strings"

	"github.com/harrison/zgrep/internal/grepcore"
)

// ErrHelp is returned by Parse when the usage text was requested.
var ErrHelp = errors.New("help requested")

// SearchOptions describes one search invocation. It is not modified after Parse.
type SearchOptions struct {
	ShowLineNumbers bool   // -n
	Recursive       bool   // -r
	FullyRecursive  bool   // -rf
	CountOnly       bool   // -c
	Pattern         string // literal substring
	TargetPath      string // file, or directory when walking
}

// Walks reports whether the target is a directory to traverse.
func (o SearchOptions) Walks() bool {
	return o.Recursive || o.FullyRecursive
}

// FullDepth reports whether traversal descends into subdirectories.
// -rf wins when both -r and -rf are given.
func (o SearchOptions) FullDepth() bool {
	return o.FullyRecursive
}

// Parse reads tokens in any order. Recognized options are exact tokens;
// everything not starting with "-" is positional. Exactly two positional
// tokens are required: pattern, then path.
//
// Errors are *grepcore.OptionError for the first unknown option,
// *grepcore.ArgError for a wrong positional count, or ErrHelp.
func Parse(args []string) (SearchOptions, error) {
	var opts SearchOptions
	positional := 0

	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "-r":
				opts.Recursive = true
			case "-rf":
				opts.FullyRecursive = true
			case "-n":
				opts.ShowLineNumbers = true
			case "-c":
				opts.CountOnly = true
			case "--help":
				return SearchOptions{}, ErrHelp
			default:
				return SearchOptions{}, &grepcore.OptionError{Token: arg}
			}
			continue
		}

		switch positional {
		case 0:
			opts.Pattern = arg
		case 1:
			opts.TargetPath = arg
		}
		positional++
	}

	if positional != grepcore.ExpectedPositionalArgs {
		return SearchOptions{}, &grepcore.ArgError{
			Expected: grepcore.ExpectedPositionalArgs,
			Received: positional,
		}
	}
	return opts, nil
}
