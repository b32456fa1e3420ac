package analysis

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports how far a folder analysis has come. Output
// goes to a single line rewritten in place, typically on stderr.
type ProgressTracker struct {
	writer    io.Writer
	total     int
	current   int
	startTime time.Time
	started   bool
	mu        sync.Mutex
}

// NewProgressTracker creates a tracker for total datasets writing to
// writer. A nil writer disables output entirely.
func NewProgressTracker(writer io.Writer, total int) *ProgressTracker {
	return &ProgressTracker{writer: writer, total: total}
}

// Start begins tracking.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startTime = time.Now()
	p.started = true
	p.current = 0
}

// Increment advances progress by one dataset and reports.
func (p *ProgressTracker) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.current++
	if p.current > p.total {
		p.current = p.total
	}
	p.report()
}

// Finish marks the run as complete and prints the final progress line
// with a trailing newline.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started || p.writer == nil {
		return
	}
	p.current = p.total
	p.report()
	fmt.Fprintln(p.writer)
}

// Elapsed returns the time since Start.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return 0
	}
	return time.Since(p.startTime)
}

// report prints the current progress. Must be called with lock held.
func (p *ProgressTracker) report() {
	if p.writer == nil {
		return
	}
	percentage := 0.0
	if p.total > 0 {
		percentage = float64(p.current) / float64(p.total) * 100.0
	}
	fmt.Fprintf(p.writer, "\rAnalyzing datasets: %d/%d (%.0f%%)", p.current, p.total, percentage)
}
