package grepcore

// Match is one line found to contain the pattern.
// It lives only until it has been printed.
type Match struct {
	// Path is the file the line was read from.
	Path string
	// LineNumber is 1-based.
	LineNumber int
	// Text is the line without its terminator.
	Text string
}
