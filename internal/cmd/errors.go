package cmd

import (
	"errors"
	"fmt"
)

// UsageError marks malformed option usage: a missing option argument, an empty
// extension list, or an unknown flag.
type UsageError struct {
	Message string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by the root command to a process exit code.
// Usage errors exit 1; every other failure, including an invalid pattern, exits 2.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 1
	}
	return 2
}
