package pipeline

import (
	"sync"
	"time"
)

// FPSCounter counts rendered frames over a trailing window and reports the
// count once per window. It only observes; it never delays a frame.
// Observe is called by the renderer, Sample by whoever displays the count.
type FPSCounter struct {
	mu         sync.Mutex
	window     time.Duration
	stamps     []time.Time
	lastReport time.Time
	report     func(fps int)
}

func NewFPSCounter(window time.Duration, report func(fps int)) *FPSCounter {
	if report == nil {
		report = func(int) {}
	}
	return &FPSCounter{window: window, report: report}
}

// Observe records a frame rendered at now and returns the number of frames
// inside the trailing window ending at now.
func (f *FPSCounter) Observe(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stamps = append(f.stamps, now)
	if f.lastReport.IsZero() {
		f.lastReport = now
	}
	return f.tick(now)
}

// Sample returns the number of frames inside the trailing window ending at
// now without recording one. With no recent frames it falls to zero.
func (f *FPSCounter) Sample(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tick(now)
}

func (f *FPSCounter) tick(now time.Time) int {
	cutoff := now.Add(-f.window)
	drop := 0
	for drop < len(f.stamps) && !f.stamps[drop].After(cutoff) {
		drop++
	}
	if drop > 0 {
		f.stamps = append(f.stamps[:0], f.stamps[drop:]...)
	}

	n := len(f.stamps)
	if !f.lastReport.IsZero() && now.Sub(f.lastReport) >= f.window {
		f.lastReport = now
		f.report(n)
	}
	return n
}
