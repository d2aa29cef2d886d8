package executor

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/harrison/qfind/internal/models"
)

// Logger defines the diagnostics the coordinator emits.
type Logger interface {
	LogDebug(message string)
	LogBatchStart(batch, size int)
	LogBatchComplete(batch, size int, duration time.Duration)
}

// Worker fills a job slot with results for its file.
type Worker interface {
	Process(ctx context.Context, job *models.Job)
}

// JobRenderer consumes completed job slots in slot order.
type JobRenderer interface {
	RenderJob(job *models.Job)
}

// FilenameRenderer consumes filename-mode matches in walk order.
type FilenameRenderer interface {
	RenderFilenameMatch(match models.FilenameMatch)
}

// Coordinator dispatches discovered files into a fixed array of reusable job
// slots, one worker goroutine per slot, and joins all of them at every batch
// boundary. Completed slots are rendered in slot order, so output follows walk
// order rather than completion order.
type Coordinator struct {
	slots    []*models.Job
	worker   Worker
	renderer JobRenderer
	logger   Logger
}

// NewCoordinator creates a Coordinator with the given number of slots.
// A slot count below 1 uses one slot per logical CPU. The logger may be nil.
func NewCoordinator(slots int, worker Worker, renderer JobRenderer, logger Logger) *Coordinator {
	slots = WorkerCount(slots)
	jobs := make([]*models.Job, slots)
	for i := range jobs {
		jobs[i] = models.NewJob(i)
	}
	return &Coordinator{
		slots:    jobs,
		worker:   worker,
		renderer: renderer,
		logger:   logger,
	}
}

// Slots returns the size of the slot pool.
func (c *Coordinator) Slots() int {
	return len(c.slots)
}

// Run scans every file the sequence yields. Statistics are updated only on the
// calling goroutine, after each barrier. When ctx is cancelled no further file
// is dispatched, the in-flight batch is drained and rendered, and ctx.Err() is
// returned.
func (c *Coordinator) Run(ctx context.Context, files iter.Seq[string], stats *models.Statistics) error {
	if c.worker == nil {
		return fmt.Errorf("worker is required")
	}
	if stats == nil {
		return fmt.Errorf("statistics cannot be nil")
	}

	var wg sync.WaitGroup
	dispatched := 0
	batch := 0
	batchStart := time.Now()

	for path := range files {
		if ctx.Err() != nil {
			break
		}

		if dispatched == 0 {
			batch++
			batchStart = time.Now()
			if c.logger != nil {
				c.logger.LogBatchStart(batch, len(c.slots))
			}
		}

		stats.RecordScanned()
		job := c.slots[dispatched]
		job.Reset(path)

		wg.Add(1)
		go func(job *models.Job) {
			defer wg.Done()
			c.worker.Process(ctx, job)
		}(job)

		dispatched++
		if dispatched == len(c.slots) {
			c.complete(&wg, batch, dispatched, batchStart, stats)
			dispatched = 0
		}
	}

	if dispatched > 0 {
		c.complete(&wg, batch, dispatched, batchStart, stats)
	}

	return ctx.Err()
}

// complete waits for the first n slots and hands them to the renderer in order.
func (c *Coordinator) complete(wg *sync.WaitGroup, batch, n int, started time.Time, stats *models.Statistics) {
	wg.Wait()

	for _, job := range c.slots[:n] {
		stats.RecordJob(job)
		if job.Failed() && c.logger != nil {
			c.logger.LogDebug(job.Err.Error())
		}
		if c.renderer != nil {
			c.renderer.RenderJob(job)
		}
	}

	if c.logger != nil {
		c.logger.LogBatchComplete(batch, n, time.Since(started))
	}
}

// ScanFilenames renders every filename match in walk order and counts it.
// Scanned-file counting happens in the walker, which tests every name.
func ScanFilenames(ctx context.Context, matches iter.Seq[models.FilenameMatch], stats *models.Statistics, renderer FilenameRenderer) error {
	if stats == nil {
		return fmt.Errorf("statistics cannot be nil")
	}
	for match := range matches {
		stats.RecordFilenameMatch()
		if renderer != nil {
			renderer.RenderFilenameMatch(match)
		}
	}
	return ctx.Err()
}
