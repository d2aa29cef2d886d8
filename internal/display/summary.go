package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/harrison/qfind/internal/models"
)

// CanceledNotice is printed after the summary when the run was interrupted.
const CanceledNotice = "<Operation was canceled prematurely>"

// RenderSummary prints the trailing statistics line and, when canceled, the
// cancellation notice.
func (r *Renderer) RenderSummary(stats *models.Statistics, canceled bool) {
	if stats.TotalMatches != 0 {
		r.newline()
		r.sink.Write(StylePlain, fmt.Sprintf("%s %s found in %s %s",
			humanize.Comma(int64(stats.TotalMatches)), noun(stats.TotalMatches, "match", "matches"),
			humanize.Comma(int64(stats.FilesWithMatches)), noun(stats.FilesWithMatches, "file", "files")))
	} else {
		r.sink.Write(StylePlain, "No matches found")
	}

	r.sink.Write(StylePlain, fmt.Sprintf(" (%s %s scanned - %s)",
		humanize.Comma(int64(stats.FilesScanned)), noun(stats.FilesScanned, "file", "files"),
		FormatElapsed(stats.Elapsed())))
	r.newline()

	if canceled {
		r.sink.Write(StyleNotice, CanceledNotice)
		r.newline()
	}
}

// FormatElapsed renders a run duration with millisecond precision.
// Examples: "0s", "850ms", "1.204s", "2m3.5s"
func FormatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}

func noun(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
