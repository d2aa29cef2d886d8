package models

// Match is a single pattern hit inside a file's content.
// Line is 1-based; Offset and Length are byte positions in the tab-expanded line.
type Match struct {
	Line   int
	Offset int
	Length int
}

// End returns the byte position just past the matched text.
func (m Match) End() int {
	return m.Offset + m.Length
}

// FilenameMatch is a pattern hit against a bare filename, produced by the
// tree walker in filename-search mode.
type FilenameMatch struct {
	FullPath string // Path as discovered by the walk (root joined with relative path)
	Filename string // Base name the pattern was evaluated against
	Offset   int    // Absolute byte offset of the match inside FullPath
	Length   int    // Length of the matched text in bytes
}

// NewFilenameMatch builds a FilenameMatch from an offset relative to the bare filename.
// The absolute offset is len(fullPath) - len(filename) + offsetInName.
func NewFilenameMatch(fullPath, filename string, offsetInName, length int) FilenameMatch {
	return FilenameMatch{
		FullPath: fullPath,
		Filename: filename,
		Offset:   len(fullPath) - len(filename) + offsetInName,
		Length:   length,
	}
}

// Prefix returns the part of FullPath before the match.
func (m FilenameMatch) Prefix() string {
	return m.FullPath[:m.Offset]
}

// Matched returns the matched substring of FullPath.
func (m FilenameMatch) Matched() string {
	return m.FullPath[m.Offset : m.Offset+m.Length]
}

// Suffix returns the part of FullPath after the match.
func (m FilenameMatch) Suffix() string {
	return m.FullPath[m.Offset+m.Length:]
}
