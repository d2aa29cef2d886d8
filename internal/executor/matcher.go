package executor

import (
	"context"
	"regexp"

	"github.com/harrison/qfind/internal/fileutil"
	"github.com/harrison/qfind/internal/models"
)

// LineMatcher is the content-mode worker. It loads a job's file and records the
// leftmost match of every line.
type LineMatcher struct {
	pattern  *regexp.Regexp
	tabWidth int
	readFile func(path string) ([]string, error)
}

// NewLineMatcher creates a LineMatcher for the compiled pattern.
// A tabWidth below 1 falls back to DefaultTabWidth.
func NewLineMatcher(pattern *regexp.Regexp, tabWidth int) *LineMatcher {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &LineMatcher{
		pattern:  pattern,
		tabWidth: tabWidth,
		readFile: fileutil.ReadLines,
	}
}

// Process fills job with its lines and matches. A read failure is stored on the
// job. Cancellation is checked between lines; matches found before it are kept.
func (m *LineMatcher) Process(ctx context.Context, job *models.Job) {
	lines, err := m.readFile(job.Filename)
	if err != nil {
		job.Err = NewFileError(job.Filename, err)
		return
	}
	job.Lines = lines

	for i, line := range lines {
		if ctx.Err() != nil {
			// Later lines were never tab-expanded; keep them out of rendering.
			job.Lines = lines[:i]
			return
		}

		line = fileutil.ExpandTabs(line, m.tabWidth)
		lines[i] = line

		loc := m.pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		job.Matches = append(job.Matches, models.Match{
			Line:   i + 1,
			Offset: loc[0],
			Length: loc[1] - loc[0],
		})
	}
}
