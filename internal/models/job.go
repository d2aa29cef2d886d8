package models

// Job is one reusable scan slot. The coordinator owns a fixed array of jobs;
// a job's identity (its slot) is stable for the whole run and only the payload
// changes between batches. At most one worker touches a job at a time.
type Job struct {
	Slot     int      // Index in the coordinator's slot array
	Filename string   // File assigned for the current batch
	Lines    []string // Tab-expanded lines, nil until loaded
	Matches  []Match  // Ascending by Line
	Err      error    // Read failure, if the file could not be loaded
}

// NewJob creates an empty job for the given slot.
func NewJob(slot int) *Job {
	return &Job{Slot: slot}
}

// Reset clears the payload and assigns a new file. The Matches backing array is
// kept so slots do not reallocate between batches.
func (j *Job) Reset(filename string) {
	j.Filename = filename
	j.Lines = nil
	j.Matches = j.Matches[:0]
	j.Err = nil
}

// Failed reports whether the file could not be read.
func (j *Job) Failed() bool {
	return j.Err != nil
}

// HasMatches returns true if at least one match was recorded.
func (j *Job) HasMatches() bool {
	return len(j.Matches) > 0
}

// MatchLines returns the set of 1-based line numbers that carry a match.
func (j *Job) MatchLines() map[int]bool {
	lines := make(map[int]bool, len(j.Matches))
	for _, m := range j.Matches {
		lines[m.Line] = true
	}
	return lines
}
