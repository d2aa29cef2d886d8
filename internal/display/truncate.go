package display

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut from a rendered line.
const Ellipsis = "..."

var ellipsisWidth = runewidth.StringWidth(Ellipsis)

// head returns the longest prefix of s that fits in width cells.
func head(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// tail returns the longest suffix of s that fits in width cells.
func tail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	used := 0
	cut := len(s)
	for cut > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:cut])
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		used += w
		cut -= size
	}
	return s[cut:]
}

// clipLine cuts a context line that would not fit in budget cells,
// leaving room for a trailing ellipsis.
func clipLine(line string, budget int) string {
	limit := budget - ellipsisWidth
	if runewidth.StringWidth(line) > limit {
		return head(line, limit) + Ellipsis
	}
	return line
}

// fitMatchLine shrinks the text around a match so the whole line fits in budget
// cells. The matched text is never cut: the before part loses its start and the
// after part loses its end, each marked with an ellipsis. When the match alone
// exhausts the budget both sides are dropped.
func fitMatchLine(before, match, after string, budget int) (string, string) {
	remaining := budget - runewidth.StringWidth(match)
	if remaining <= 0 {
		return "", ""
	}

	beforeWidth := runewidth.StringWidth(before)
	reserved := min(remaining, beforeWidth+ellipsisWidth)
	remaining -= reserved

	if beforeWidth > reserved {
		before = Ellipsis + tail(before, max(0, reserved-ellipsisWidth))
	}
	if runewidth.StringWidth(after) > remaining {
		after = head(after, max(0, remaining-ellipsisWidth)) + Ellipsis
	}
	return before, after
}
