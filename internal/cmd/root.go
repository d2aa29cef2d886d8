package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for qfind
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qfind [flags] [pattern]",
		Short: "Fast concurrent regex search through a directory tree",
		Long: `qfind searches a directory tree for a regular expression, either inside
file contents or in the file names themselves, and prints every match with
surrounding context lines.

Files are scanned concurrently, one worker per CPU, and results are printed
in the order the files were discovered. Press Ctrl-C to stop early; files
already being scanned are finished and reported.

If no pattern is given it is read from standard input.

A directory containing a .qfind file is skipped together with everything
below it.

Configuration is loaded from $QFIND_HOME/config.yaml (or the user config
directory) if present. CLI flags override configuration file settings.

Examples:
  qfind TODO                          # search the default extensions under .
  qfind -i "func\s+main" --ext go     # case-insensitive, Go files only
  qfind -s error --ext '*' --exc log  # every file except *.log, no context
  qfind -f _test --dirs src;pkg       # file names containing "_test"`,
		Version: Version,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageErrorf("accepts at most one pattern, received %d", len(args))
			}
			return nil
		},
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	cmd.Flags().BoolP("ignore-case", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolP("all", "a", false, "Include hidden files and directories")
	cmd.Flags().BoolP("simple", "s", false, "Simple output: matched lines only, no context")
	cmd.Flags().BoolP("filenames", "f", false, "Search file names instead of file contents")
	cmd.Flags().String("ext", "", "Comma separated extensions to include ('*' = all files)")
	cmd.Flags().String("exc", "", "Comma separated extensions to exclude")
	cmd.Flags().String("dirs", "", "Comma or semicolon separated root directories (default: current directory)")
	cmd.Flags().String("config", "", "Path to config file (default: $QFIND_HOME/config.yaml)")
	cmd.Flags().Int("workers", 0, "Files scanned concurrently per batch (0 = one per CPU)")
	cmd.Flags().Int("context", 0, "Context lines around each match (default from config, 5)")
	cmd.Flags().Int("width", 0, "Output width in columns (0 = detect terminal)")
	cmd.Flags().String("log-level", "", "Diagnostic log level on stderr (trace, debug, info, warn, error)")
	cmd.Flags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	return cmd
}
