package fileutil

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultExtensions is the include list used when no --ext filter is given.
var DefaultExtensions = []string{
	"txt", "cpp", "inl", "h", "c", "cs", "lua", "inc", "cfg", "ini",
	"json", "csv", "py", "js", "html", "cshtml", "css", "ts", "java",
}

// AllExtensions is the --ext value that disables include filtering.
const AllExtensions = "*"

var extensionToken = regexp.MustCompile(`[A-Za-z0-9_]+`)

// ParseExtensionList extracts extension tokens from a user-supplied list such as
// "go, .md;txt". Separators and leading dots are ignored.
func ParseExtensionList(data string) []string {
	return extensionToken.FindAllString(data, -1)
}

// CompileExtensionRegex builds a case-insensitive regex matching filenames that end
// in one of the given extensions. An empty list is an error.
func CompileExtensionRegex(extensions []string) (*regexp.Regexp, error) {
	if len(extensions) == 0 {
		return nil, fmt.Errorf("extension list is empty")
	}

	quoted := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(ext))
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("extension list is empty")
	}

	return regexp.Compile(`(?i)\.(` + strings.Join(quoted, "|") + `)$`)
}
