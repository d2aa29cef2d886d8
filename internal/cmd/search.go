package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/qfind/internal/config"
	"github.com/harrison/qfind/internal/display"
	"github.com/harrison/qfind/internal/executor"
	"github.com/harrison/qfind/internal/fileutil"
	"github.com/harrison/qfind/internal/logger"
	"github.com/harrison/qfind/internal/models"
)

// promptText is shown when the pattern is read interactively.
const promptText = "Find regex> "

// runSearch implements the root command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, configWarning, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags, err := collectFlags(cmd)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(flags)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dirsFlag, _ := cmd.Flags().GetString("dirs")
	roots := ParseDirs(dirsFlag)
	if cmd.Flags().Changed("dirs") && len(roots) == 0 {
		return usageErrorf("--dirs argument list is empty.")
	}
	if len(roots) == 0 {
		roots = []string{"."}
	}

	filenameMode, _ := cmd.Flags().GetBool("filenames")

	ctx, stop := interruptContext(commandContext(cmd))
	defer stop()

	var pattern string
	if len(args) == 1 {
		pattern = args[0]
	} else {
		var ok bool
		pattern, ok = promptPattern(cmd.InOrStdin(), cmd.OutOrStdout())
		if !ok {
			return nil
		}
	}
	if ctx.Err() != nil {
		return nil
	}

	stats := models.NewStatistics()

	re, err := executor.CompilePattern(pattern, cfg.IgnoreCase)
	if err != nil {
		return err
	}

	walkOpts, err := buildWalkOptions(cfg)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel).WithRunID(runID)
	if configWarning != "" {
		log.LogWarn(configWarning)
	}

	opts := executor.SearchOptions{
		Pattern:  re,
		Mode:     executor.ModeContent,
		TabWidth: cfg.TabWidth,
		Workers:  executor.WorkerCount(cfg.Workers),
	}
	if filenameMode {
		opts.Mode = executor.ModeFilename
	}
	log.LogRunStart(opts.Mode.String(), opts.Workers, roots)

	out := cmd.OutOrStdout()
	renderer := display.NewRenderer(newSink(out), display.RendererOptions{
		Width:        outputWidth(out, cfg.Width),
		Simple:       cfg.Simple,
		ContextLines: cfg.ContextLines,
	})

	walker := fileutil.NewWalker(walkOpts, log)
	err = executor.Search(ctx, opts, walker, renderer, log, roots, stats)
	stats.Stop()

	canceled := errors.Is(err, context.Canceled)
	if err != nil && !canceled {
		return err
	}

	renderer.RenderSummary(stats, canceled)
	return nil
}

// interruptContext is canceled by the first interrupt. The handler is released as
// soon as that happens, so a second interrupt during the drain terminates the process.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig reads --config when given, otherwise the default config file.
// The returned warning is logged once the logger exists.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, "", nil
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		return config.DefaultConfig(), fmt.Sprintf("no config directory, using defaults: %v", err), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, "", nil
}

// collectFlags builds config overrides from the flags the user actually set.
func collectFlags(cmd *cobra.Command) (config.Flags, error) {
	var flags config.Flags
	fs := cmd.Flags()

	if fs.Changed("ext") {
		value, _ := fs.GetString("ext")
		exts, err := parseExtensionFlag("--ext", value, true)
		if err != nil {
			return flags, err
		}
		flags.Extensions = exts
	}
	if fs.Changed("exc") {
		value, _ := fs.GetString("exc")
		exts, err := parseExtensionFlag("--exc", value, false)
		if err != nil {
			return flags, err
		}
		flags.ExcludeExtensions = exts
	}

	if fs.Changed("workers") {
		v, _ := fs.GetInt("workers")
		if v < 0 {
			return flags, usageErrorf("--workers must be >= 0, got %d", v)
		}
		flags.Workers = &v
	}
	if fs.Changed("context") {
		v, _ := fs.GetInt("context")
		if v < 1 {
			return flags, usageErrorf("--context must be > 0, got %d", v)
		}
		flags.ContextLines = &v
	}
	if fs.Changed("width") {
		v, _ := fs.GetInt("width")
		if v < 0 {
			return flags, usageErrorf("--width must be >= 0, got %d", v)
		}
		flags.Width = &v
	}
	if fs.Changed("log-level") {
		v, _ := fs.GetString("log-level")
		if !logger.IsValidLevel(strings.ToLower(strings.TrimSpace(v))) {
			return flags, usageErrorf("--log-level must be one of trace, debug, info, warn, error, got %q", v)
		}
		flags.LogLevel = &v
	}
	if verbose, _ := fs.GetBool("verbose"); verbose && !fs.Changed("log-level") {
		v := "debug"
		flags.LogLevel = &v
	}

	for name, target := range map[string]**bool{
		"ignore-case": &flags.IgnoreCase,
		"all":         &flags.IncludeHidden,
		"simple":      &flags.Simple,
	} {
		if fs.Changed(name) {
			v, _ := fs.GetBool(name)
			*target = &v
		}
	}

	return flags, nil
}

// parseExtensionFlag turns an --ext/--exc value into extension tokens.
func parseExtensionFlag(name, value string, allowAll bool) ([]string, error) {
	if allowAll && strings.TrimSpace(value) == fileutil.AllExtensions {
		return []string{fileutil.AllExtensions}, nil
	}
	exts := fileutil.ParseExtensionList(value)
	if len(exts) == 0 {
		return nil, usageErrorf("%s argument list is empty.", name)
	}
	return exts, nil
}

// buildWalkOptions compiles the configured extension filters.
func buildWalkOptions(cfg *config.Config) (fileutil.WalkOptions, error) {
	opts := fileutil.WalkOptions{
		IncludeHidden: cfg.IncludeHidden,
		Sentinel:      cfg.Sentinel,
	}

	if !cfg.FilterAll() {
		include, err := fileutil.CompileExtensionRegex(cfg.Extensions)
		if err != nil {
			return opts, fmt.Errorf("invalid extensions: %w", err)
		}
		opts.Include = include
	}
	if len(cfg.ExcludeExtensions) > 0 {
		exclude, err := fileutil.CompileExtensionRegex(cfg.ExcludeExtensions)
		if err != nil {
			return opts, fmt.Errorf("invalid exclude_extensions: %w", err)
		}
		opts.Exclude = exclude
	}
	return opts, nil
}

// ParseDirs splits a --dirs value on commas and semicolons, dropping empty entries.
func ParseDirs(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	})
	dirs := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			dirs = append(dirs, f)
		}
	}
	return dirs
}

// promptPattern asks for the pattern on in. It returns false on EOF or empty input.
func promptPattern(in io.Reader, out io.Writer) (string, bool) {
	fmt.Fprint(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", false
	}
	return line, true
}

func newSink(out io.Writer) display.Sink {
	if f, ok := out.(*os.File); ok {
		return display.NewColorSink(out, display.ColorEnabled(f))
	}
	return display.NewPlainSink(out)
}

func outputWidth(out io.Writer, configured int) int {
	if configured > 0 {
		return configured
	}
	if f, ok := out.(*os.File); ok {
		return display.TerminalWidth(f, display.DefaultWidth)
	}
	return display.DefaultWidth
}
