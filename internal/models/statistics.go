package models

import "time"

// Statistics accumulates run counters. It is mutated only by the coordinating
// goroutine, after a batch barrier, so it carries no lock.
type Statistics struct {
	FilesScanned     int
	FilesWithMatches int
	TotalMatches     int

	start   time.Time
	elapsed time.Duration
}

// NewStatistics creates a Statistics whose clock starts now.
func NewStatistics() *Statistics {
	return &Statistics{start: time.Now()}
}

// RecordScanned counts one file handed to a worker or tested by name.
func (s *Statistics) RecordScanned() {
	s.FilesScanned++
}

// RecordJob folds a completed job into the counters. Failed jobs and jobs
// without matches only count as scanned.
func (s *Statistics) RecordJob(job *Job) {
	if job.Failed() || !job.HasMatches() {
		return
	}
	s.FilesWithMatches++
	s.TotalMatches += len(job.Matches)
}

// RecordFilenameMatch counts a filename-mode hit. Each hit is its own file.
func (s *Statistics) RecordFilenameMatch() {
	s.FilesWithMatches++
	s.TotalMatches++
}

// Stop freezes the elapsed time. Later calls keep the first value.
func (s *Statistics) Stop() time.Duration {
	if s.elapsed == 0 {
		s.elapsed = time.Since(s.start)
	}
	return s.elapsed
}

// Elapsed returns the frozen elapsed time, or the running time if Stop was not called.
func (s *Statistics) Elapsed() time.Duration {
	if s.elapsed != 0 {
		return s.elapsed
	}
	return time.Since(s.start)
}
