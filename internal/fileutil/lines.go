package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// utf8BOM is the byte order mark some editors write at the start of UTF-8 files.
const utf8BOM = "\xEF\xBB\xBF"

// ReadLines loads a file and splits it into lines. A leading UTF-8 byte order
// mark is dropped. Lines end at "\n", "\r\n" or a lone "\r"; a trailing
// terminator does not produce an empty last line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return SplitLines(strings.TrimPrefix(string(data), utf8BOM)), nil
}

// SplitLines splits text on any line terminator.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// ExpandTabs replaces every tab with width spaces.
func ExpandTabs(line string, width int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", width))
}
