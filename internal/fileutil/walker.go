package fileutil

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/harrison/qfind/internal/models"
)

// DefaultSentinel is the marker file whose presence excludes a directory from the walk.
const DefaultSentinel = ".qfind"

// DirLister lists the entries of one directory. os.ReadDir is the default.
type DirLister func(dir string) ([]fs.DirEntry, error)

// Logger receives diagnostics about skipped directories.
type Logger interface {
	LogDebug(message string)
}

// WalkOptions configures which entries the walker yields.
type WalkOptions struct {
	// IncludeHidden walks entries whose name starts with "."
	IncludeHidden bool
	// Include matches filenames to yield; nil yields every file
	Include *regexp.Regexp
	// Exclude matches filenames to drop; it wins over Include
	Exclude *regexp.Regexp
	// Sentinel names the marker file that excludes its directory; empty disables the rule
	Sentinel string
}

// Walker enumerates a directory tree depth-first without recursion. Entry order
// within a directory is whatever the DirLister returns.
type Walker struct {
	opts   WalkOptions
	list   DirLister
	stat   func(path string) (fs.FileInfo, error)
	logger Logger
}

// NewWalker creates a Walker backed by the host filesystem.
// The logger may be nil.
func NewWalker(opts WalkOptions, logger Logger) *Walker {
	return &Walker{
		opts:   opts,
		list:   os.ReadDir,
		stat:   os.Stat,
		logger: logger,
	}
}

// WithLister replaces the directory listing primitive.
func (w *Walker) WithLister(list DirLister) *Walker {
	w.list = list
	return w
}

// IsHidden reports whether an entry name is hidden by host convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// Files yields every file under the roots, in order, that passes the hidden,
// sentinel and extension rules. The walk stops as soon as ctx is done.
func (w *Walker) Files(ctx context.Context, roots ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, root := range roots {
			stopped := false
			w.walk(ctx, root, func(path, name string) bool {
				if !w.accepts(name) {
					return true
				}
				if !yield(path) {
					stopped = true
					return false
				}
				return true
			})
			if stopped || ctx.Err() != nil {
				return
			}
		}
	}
}

// Names evaluates pattern against the bare name of every file under the roots
// and yields the leftmost hit of each matching name. Extension filters do not
// apply. Every tested name is counted in stats as scanned.
func (w *Walker) Names(ctx context.Context, pattern *regexp.Regexp, stats *models.Statistics, roots ...string) iter.Seq[models.FilenameMatch] {
	return func(yield func(models.FilenameMatch) bool) {
		for _, root := range roots {
			stopped := false
			w.walk(ctx, root, func(path, name string) bool {
				if stats != nil {
					stats.RecordScanned()
				}
				loc := pattern.FindStringIndex(name)
				if loc == nil {
					return true
				}
				if !yield(models.NewFilenameMatch(path, name, loc[0], loc[1]-loc[0])) {
					stopped = true
					return false
				}
				return true
			})
			if stopped || ctx.Err() != nil {
				return
			}
		}
	}
}

func (w *Walker) accepts(name string) bool {
	if w.opts.Include != nil && !w.opts.Include.MatchString(name) {
		return false
	}
	if w.opts.Exclude != nil && w.opts.Exclude.MatchString(name) {
		return false
	}
	return true
}

type frame struct {
	dir     string
	entries []fs.DirEntry
	next    int
}

// walk visits files under root in depth-first discovery order using an explicit
// stack, calling visit for each regular file until visit returns false.
func (w *Walker) walk(ctx context.Context, root string, visit func(path, name string) bool) {
	if root == "" {
		root = "."
	}

	var stack []*frame
	if f := w.open(root); f != nil {
		stack = append(stack, f)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		if ctx.Err() != nil {
			return
		}

		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		if !w.opts.IncludeHidden && IsHidden(name) {
			continue
		}

		path := filepath.Join(top.dir, name)
		switch w.classify(path, entry) {
		case entryDir:
			if f := w.open(path); f != nil {
				stack = append(stack, f)
			}
		case entryFile:
			if !visit(path, name) {
				return
			}
		}
	}
}

// open lists a directory, returning nil when it is unreadable or carries the sentinel.
func (w *Walker) open(dir string) *frame {
	entries, err := w.list(dir)
	if err != nil {
		w.debug(fmt.Sprintf("skipping inaccessible directory %s: %v", dir, err))
		return nil
	}

	if w.opts.Sentinel != "" {
		for _, e := range entries {
			if e.Name() == w.opts.Sentinel {
				w.debug(fmt.Sprintf("skipping %s: contains %s", dir, w.opts.Sentinel))
				return nil
			}
		}
	}

	return &frame{dir: dir, entries: entries}
}

type entryKind int

const (
	entrySkip entryKind = iota
	entryDir
	entryFile
)

// classify resolves symlinks to regular files; linked directories are not followed
// and special files are never yielded.
func (w *Walker) classify(path string, entry fs.DirEntry) entryKind {
	mode := entry.Type()
	switch {
	case entry.IsDir():
		return entryDir
	case mode.IsRegular():
		return entryFile
	case mode&fs.ModeSymlink != 0:
		info, err := w.stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return entrySkip
		}
		return entryFile
	default:
		return entrySkip
	}
}

func (w *Walker) debug(message string) {
	if w.logger != nil {
		w.logger.LogDebug(message)
	}
}
