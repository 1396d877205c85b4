package pipeline

import (
	"testing"
	"time"
)

func TestFPSCounterTrailingWindow(t *testing.T) {
	var reports []int
	f := NewFPSCounter(time.Second, func(n int) { reports = append(reports, n) })

	const interval = 20 * time.Millisecond // 50 fps
	var last int
	for k := 0; k <= 50; k++ {
		last = f.Observe(base.Add(time.Duration(k) * interval))
	}
	if last != 50 {
		t.Errorf("frames in window = %d, want 50", last)
	}
	if len(reports) != 1 || reports[0] != 50 {
		t.Errorf("reports = %v, want [50]", reports)
	}
}

func TestFPSCounterDropsStaleFrames(t *testing.T) {
	f := NewFPSCounter(time.Second, nil)
	for k := 0; k < 30; k++ {
		f.Observe(base.Add(time.Duration(k) * time.Millisecond))
	}
	if n := f.Observe(base.Add(5 * time.Second)); n != 1 {
		t.Errorf("after a 5s gap window holds %d frames, want 1", n)
	}
}

func TestFPSCounterReportsOncePerWindow(t *testing.T) {
	var reports []int
	f := NewFPSCounter(time.Second, func(n int) { reports = append(reports, n) })
	for k := 0; k <= 110; k++ {
		f.Observe(base.Add(time.Duration(k) * 30 * time.Millisecond))
	}
	// Windows close at 1.02s, 2.04s and 3.06s.
	if len(reports) != 3 {
		t.Fatalf("reports = %v, want 3 entries", reports)
	}
	for _, n := range reports {
		if n < 33 || n > 34 {
			t.Errorf("report %d outside 33..34", n)
		}
	}
}

func TestFPSCounterSampleFallsToZero(t *testing.T) {
	var reports []int
	f := NewFPSCounter(time.Second, func(n int) { reports = append(reports, n) })
	for k := 0; k < 60; k++ {
		f.Observe(base.Add(time.Duration(k) * time.Second / 60))
	}
	if n := f.Sample(base.Add(990 * time.Millisecond)); n != 60 {
		t.Errorf("Sample inside the window = %d, want 60", n)
	}
	if n := f.Sample(base.Add(3 * time.Second)); n != 0 {
		t.Errorf("Sample after 2s without frames = %d, want 0", n)
	}
	if len(reports) == 0 || reports[len(reports)-1] != 0 {
		t.Errorf("reports = %v, want the last one to be 0", reports)
	}
}
