package cue

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap passes samples through from src and keeps the most recent ones in
// a ring so the HUD can show how loud the cue is.
type levelTap struct {
	src  beep.Streamer
	mu   sync.RWMutex
	ring [][2]float64
	head int // next write position
}

func newLevelTap(src beep.Streamer, size int) *levelTap {
	return &levelTap{src: src, ring: make([][2]float64, size)}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	t.record(samples[:n])
	return n, ok
}

func (t *levelTap) Err() error { return t.src.Err() }

// record copies samples into the ring, keeping only the newest len(ring).
func (t *levelTap) record(samples [][2]float64) {
	if len(samples) > len(t.ring) {
		samples = samples[len(samples)-len(t.ring):]
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(samples) > 0 {
		k := copy(t.ring[t.head:], samples)
		samples = samples[k:]
		t.head = (t.head + k) % len(t.ring)
	}
}

// snapshot returns up to the last n samples, oldest first.
func (t *levelTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.ring))
	if n <= 0 {
		return nil
	}
	out := make([][2]float64, n)
	start := (t.head - n + len(t.ring)) % len(t.ring)
	k := copy(out, t.ring[start:])
	copy(out[k:], t.ring)
	return out
}

// level returns the RMS of the last n mono-mixed samples.
func (t *levelTap) level(n int) float64 {
	samples := t.snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(len(samples)))
}
