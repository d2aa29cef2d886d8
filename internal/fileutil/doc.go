// Package fileutil provides directory traversal, extension filtering and line
// loading for qfind.
//
// # Main Components
//
// Walker - lazy depth-first traversal of one or more roots:
//   - Files yields regular files accepted by the include and exclude extension filters
//   - Names yields filename matches for a pattern, counting every name it inspects
//   - Hidden entries (leading ".") are skipped unless IncludeHidden is set
//   - A directory containing the sentinel file is skipped with its subtree
//   - Unreadable directories are skipped and logged at debug level
//
// Both iterators stop promptly when the consumer breaks or the context is
// canceled, so callers can abandon a walk at any file boundary.
//
// Extension helpers:
//   - ParseExtensionList turns "go, .md;txt" into ["go", "md", "txt"]
//   - CompileExtensionRegex builds a case-insensitive suffix matcher
//
// Line helpers:
//   - ReadLines loads a file and splits it on "\n", "\r\n" and "\r"
//   - ExpandTabs replaces tabs with a fixed number of spaces
//
// # Usage
//
//	include, _ := fileutil.CompileExtensionRegex(fileutil.DefaultExtensions)
//	w := fileutil.NewWalker(fileutil.WalkOptions{
//	    Include:  include,
//	    Sentinel: fileutil.DefaultSentinel,
//	}, log)
//	for path := range w.Files(ctx, "src", "docs") {
//	    fmt.Println(path)
//	}
package fileutil
