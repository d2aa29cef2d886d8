package display

import (
	"strings"
	"testing"
	"time"

	"github.com/harrison/qfind/internal/models"
)

func frozenStats(scanned, withMatches, matches int) *models.Statistics {
	stats := models.NewStatistics()
	stats.FilesScanned = scanned
	stats.FilesWithMatches = withMatches
	stats.TotalMatches = matches
	stats.Stop()
	return stats
}

func TestRenderSummaryWithMatches(t *testing.T) {
	sink := &recordingSink{}
	r := NewRenderer(sink, RendererOptions{})

	r.RenderSummary(frozenStats(1500, 2, 3), false)

	out := sink.String()
	if !strings.HasPrefix(out, "\n3 matches found in 2 files (1,500 files scanned - ") {
		t.Errorf("summary = %q", out)
	}
	if !strings.HasSuffix(out, ")\n") {
		t.Errorf("summary should end the line, got %q", out)
	}
	if strings.Contains(out, CanceledNotice) {
		t.Error("notice printed for a completed run")
	}
}

func TestRenderSummarySingular(t *testing.T) {
	sink := &recordingSink{}
	r := NewRenderer(sink, RendererOptions{})

	r.RenderSummary(frozenStats(1, 1, 1), false)

	if !strings.Contains(sink.String(), "1 match found in 1 file (1 file scanned - ") {
		t.Errorf("summary = %q", sink.String())
	}
}

func TestRenderSummaryNoMatches(t *testing.T) {
	sink := &recordingSink{}
	r := NewRenderer(sink, RendererOptions{})

	r.RenderSummary(frozenStats(7, 0, 0), false)

	if !strings.HasPrefix(sink.String(), "No matches found (7 files scanned - ") {
		t.Errorf("summary = %q", sink.String())
	}
}

func TestRenderSummaryCanceled(t *testing.T) {
	sink := &recordingSink{}
	r := NewRenderer(sink, RendererOptions{})

	r.RenderSummary(frozenStats(3, 1, 1), true)

	notices := sink.Styled(StyleNotice)
	if len(notices) != 1 || notices[0] != CanceledNotice {
		t.Errorf("notice = %q", notices)
	}
	if !strings.HasSuffix(sink.String(), CanceledNotice+"\n") {
		t.Errorf("notice should be the last line, got %q", sink.String())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0s"},
		{d: 850*time.Millisecond + 300*time.Microsecond, want: "850ms"},
		{d: 1204*time.Millisecond + 400*time.Microsecond, want: "1.204s"},
		{d: 123500 * time.Millisecond, want: "2m3.5s"},
		{d: 1500 * time.Nanosecond, want: "2µs"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
