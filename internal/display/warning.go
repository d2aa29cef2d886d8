package display

import (
	"errors"
	"io/fs"
)

// Warning is a user-facing message printed inline with the results.
type Warning struct {
	Title   string // Main warning line
	Message string // Short explanation (optional)
}

// Display writes the warning to sink: the title as an error line, then the
// message indented on its own line.
func (w Warning) Display(sink Sink) {
	sink.Write(StylePlain, "\n")
	sink.Write(StyleError, w.Title)
	sink.Write(StylePlain, "\n")

	if w.Message != "" {
		sink.Write(StylePlain, "    "+w.Message)
		sink.Write(StylePlain, "\n")
	}
}

// ReadFailure creates the warning shown in place of an unreadable file's results.
func ReadFailure(filename string, err error) Warning {
	return Warning{
		Title:   "Read error of file: " + filename,
		Message: ShortMessage(err),
	}
}

// ShortMessage reduces err to the operating system's reason when there is one,
// dropping paths and wrapping context.
func ShortMessage(err error) string {
	if err == nil {
		return ""
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Err != nil {
		return pathErr.Err.Error()
	}
	return err.Error()
}
