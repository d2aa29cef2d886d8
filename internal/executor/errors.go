package executor

import (
	"fmt"
	"strings"
)

// FileError records a per-file read failure. It is stored on the job and
// rendered in place of the file's results; it never aborts the run.
type FileError struct {
	Path string // File that could not be read
	Err  error  // Underlying error
}

// NewFileError wraps err for path.
func NewFileError(path string, err error) *FileError {
	return &FileError{Path: path, Err: err}
}

// Error implements the error interface for FileError.
func (e *FileError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("read error of file %s", e.Path))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *FileError) Unwrap() error {
	return e.Err
}

// PatternError is returned when the search pattern does not compile.
// It is fatal and raised before any scanning begins.
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying regexp error.
func (e *PatternError) Unwrap() error {
	return e.Err
}
