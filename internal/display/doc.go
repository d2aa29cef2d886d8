// Package display renders search results for the terminal.
//
// All output goes through a Sink, which receives plain text together with a
// Style annotation for each run. ColorSink maps styles to ANSI colors with
// fatih/color; PlainSink drops them. Tests record the annotations directly.
//
// # Content results
//
// Renderer.RenderJob prints a header bar for every file with matches, then each
// match line with up to ContextLines lines before and after it:
//
//	 src/main.c                                                   2 results
//	    10: int main(void)
//	    11: {
//	    12:     foo();
//	    13:     return 0;
//	==================================================================
//	    40:     foo(bar);
//
// Context windows of nearby matches are merged: a source line is printed at
// most once. The before-side skips over other match lines, the after-side stops
// at the first one. Simple mode prints only the match lines.
//
// Match lines are shrunk to the print budget (terminal width minus 12 cells)
// around the match, which is never cut. Widths are measured in display cells
// with go-runewidth.
//
// # Filename results
//
// Renderer.RenderFilenameMatch prints the full path with the matched part of
// the bare filename highlighted.
package display
