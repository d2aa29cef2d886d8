package executor

import (
	"regexp"
	"runtime"
)

// SearchMode selects what the pattern is evaluated against.
type SearchMode int

const (
	// ModeContent matches the pattern against file lines.
	ModeContent SearchMode = iota
	// ModeFilename matches the pattern against bare file names.
	ModeFilename
)

// String returns the string representation of SearchMode.
func (m SearchMode) String() string {
	switch m {
	case ModeContent:
		return "content"
	case ModeFilename:
		return "filename"
	default:
		return "unknown"
	}
}

// DefaultTabWidth is the number of spaces a tab expands to.
const DefaultTabWidth = 4

// SearchOptions is the immutable configuration of one run. It is built once
// before scanning and shared by reference with every worker.
type SearchOptions struct {
	Pattern  *regexp.Regexp
	Mode     SearchMode
	TabWidth int
	Workers  int
}

// CompilePattern compiles the user pattern, prefixing (?i) for case-insensitive search.
func CompilePattern(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// WorkerCount returns n when positive, otherwise the number of logical CPUs.
func WorkerCount(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}
