package reindex

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports reindexing progress as a single in-place line on
// its writer, typically os.Stderr. Safe for concurrent batch workers.
type ProgressTracker struct {
	mu           sync.Mutex
	writer       io.Writer
	total        int
	interval     int
	processed    int
	lastReported int
	startedAt    time.Time
	started      bool
}

// NewProgressTracker tracks a run over total profiles, printing a progress
// line every interval profiles processed.
func NewProgressTracker(writer io.Writer, total, interval int) *ProgressTracker {
	return &ProgressTracker{
		writer:   writer,
		total:    total,
		interval: interval,
	}
}

// Start resets the tracker and begins timing.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startedAt = time.Now()
	p.started = true
	p.processed = 0
	p.lastReported = 0
}

// Update sets the absolute number of profiles processed. Values past the
// total are capped; calls before Start are ignored.
func (p *ProgressTracker) Update(processed int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.advance(processed)
}

// Increment adds delta processed profiles.
func (p *ProgressTracker) Increment(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.advance(p.processed + delta)
}

// Finish reports final progress and terminates the progress line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.processed = p.total
	p.report()
	fmt.Fprintln(p.writer)
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}
	return time.Since(p.startedAt)
}

// advance moves progress to processed and reports if an interval boundary
// was crossed. Must be called with the lock held.
func (p *ProgressTracker) advance(processed int) {
	if processed > p.total {
		processed = p.total
	}
	p.processed = processed

	if p.processed-p.lastReported >= p.interval {
		p.report()
		p.lastReported = p.processed
	}
}

// report prints the current progress line. Must be called with the lock held.
func (p *ProgressTracker) report() {
	elapsed := time.Since(p.startedAt)
	rate := float64(p.processed) / elapsed.Seconds()

	percentage := 0.0
	if p.total > 0 {
		percentage = float64(p.processed) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "\rProgress: %d/%d (%.1f%%) - %.1f profiles/s",
		p.processed, p.total, percentage, rate)
}
