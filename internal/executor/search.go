package executor

import (
	"context"
	"fmt"
	"iter"
	"regexp"

	"github.com/harrison/qfind/internal/models"
)

// TreeWalker yields candidate files, or filename matches, under a set of roots.
type TreeWalker interface {
	Files(ctx context.Context, roots ...string) iter.Seq[string]
	Names(ctx context.Context, pattern *regexp.Regexp, stats *models.Statistics, roots ...string) iter.Seq[models.FilenameMatch]
}

// ResultRenderer renders both kinds of results.
type ResultRenderer interface {
	JobRenderer
	FilenameRenderer
}

// Search runs one search over roots in the mode opts selects. It returns
// ctx.Err() when the run was cancelled; everything rendered up to that point
// stays rendered and stats reflect it.
func Search(ctx context.Context, opts SearchOptions, walker TreeWalker, renderer ResultRenderer, logger Logger, roots []string, stats *models.Statistics) error {
	if opts.Pattern == nil {
		return fmt.Errorf("search pattern is required")
	}
	if walker == nil {
		return fmt.Errorf("tree walker is required")
	}

	switch opts.Mode {
	case ModeFilename:
		return ScanFilenames(ctx, walker.Names(ctx, opts.Pattern, stats, roots...), stats, renderer)
	case ModeContent:
		coordinator := NewCoordinator(opts.Workers, NewLineMatcher(opts.Pattern, opts.TabWidth), renderer, logger)
		return coordinator.Run(ctx, walker.Files(ctx, roots...), stats)
	default:
		return fmt.Errorf("unknown search mode %d", opts.Mode)
	}
}
