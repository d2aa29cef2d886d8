package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/qfind/internal/models"
)

// DefaultContextLines is how many lines are shown on each side of a match.
const DefaultContextLines = 5

// lineNumberWidth is the column the line labels are right-justified to.
const lineNumberWidth = 6

// widthReserve is subtracted from the terminal width to get the print budget.
const widthReserve = 12

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Width        int  // Terminal width in columns
	Simple       bool // Suppress context lines and separators
	ContextLines int  // Lines of context on each side; 0 uses DefaultContextLines
}

// Renderer turns completed jobs and filename matches into annotated text.
// It is driven by a single goroutine and is not safe for concurrent use.
type Renderer struct {
	sink         Sink
	width        int
	budget       int
	simple       bool
	contextLines int
}

// NewRenderer creates a Renderer writing to sink.
func NewRenderer(sink Sink, opts RendererOptions) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < MinWidth {
		width = MinWidth
	}
	contextLines := opts.ContextLines
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}
	return &Renderer{
		sink:         sink,
		width:        width,
		budget:       width - widthReserve,
		simple:       opts.Simple,
		contextLines: contextLines,
	}
}

// RenderJob prints one file's results: a header, then every match with its
// context windows merged so no source line is printed twice. Jobs without
// matches print nothing; failed jobs print a read error instead.
func (r *Renderer) RenderJob(job *models.Job) {
	if job.Failed() {
		ReadFailure(job.Filename, job.Err).Display(r.sink)
		return
	}
	if !job.HasMatches() {
		return
	}

	r.header(job.Filename, len(job.Matches))

	matchLines := job.MatchLines()
	printed := make(map[int]bool)
	previous := 0

	for _, m := range job.Matches {
		if m.Line < 1 || m.Line > len(job.Lines) {
			continue
		}

		if !r.simple {
			if previous != 0 && previous != m.Line-1 {
				r.separator()
			}

			// Before-side: skip over match lines, they get their own block.
			for n := max(1, m.Line-r.contextLines); n < m.Line; n++ {
				if matchLines[n] || printed[n] {
					continue
				}
				printed[n] = true
				r.contextLine(n, job.Lines[n-1])
				previous = n
			}
		}

		r.matchLine(m, job.Lines[m.Line-1])
		previous = m.Line

		if !r.simple {
			// After-side: stop at the next match line instead of skipping it.
			last := min(len(job.Lines), m.Line+r.contextLines)
			for n := m.Line + 1; n <= last; n++ {
				if matchLines[n] {
					break
				}
				if printed[n] {
					continue
				}
				printed[n] = true
				r.contextLine(n, job.Lines[n-1])
				previous = n
			}
		}
	}
}

// RenderFilenameMatch prints a path with the matched part of its filename highlighted.
func (r *Renderer) RenderFilenameMatch(match models.FilenameMatch) {
	r.sink.Write(StylePlain, match.Prefix())
	r.sink.Write(StyleHighlight, match.Matched())
	r.sink.Write(StylePlain, match.Suffix())
	r.newline()
}

func (r *Renderer) header(filename string, count int) {
	title := " " + filename
	results := fmt.Sprintf("%d result%s ", count, plural(count))
	pad := r.width - 1 - runewidth.StringWidth(title) - runewidth.StringWidth(results)
	if pad < 1 {
		pad = 1
	}

	r.newline()
	r.sink.Write(StyleHeader, title)
	r.sink.Write(StyleHeaderCount, strings.Repeat(" ", pad)+results)
	r.newline()
}

func (r *Renderer) separator() {
	r.sink.Write(StyleSeparator, strings.Repeat("=", r.width-1))
	r.newline()
}

func (r *Renderer) contextLine(n int, text string) {
	r.label(n)
	r.sink.Write(StylePlain, clipLine(text, r.budget))
	r.newline()
}

func (r *Renderer) matchLine(m models.Match, text string) {
	before := text[:m.Offset]
	match := text[m.Offset:m.End()]
	after := text[m.End():]
	before, after = fitMatchLine(before, match, after, r.budget)

	r.label(m.Line)
	r.sink.Write(StyleMatchLine, before)
	r.sink.Write(StyleHighlight, match)
	r.sink.Write(StyleMatchLine, after)
	r.newline()
}

func (r *Renderer) label(n int) {
	r.sink.Write(StylePlain, fmt.Sprintf("%*d: ", lineNumberWidth, n))
}

func (r *Renderer) newline() {
	r.sink.Write(StylePlain, "\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
