package panel

import (
	"math"
	"testing"
)

func TestLinearValue(t *testing.T) {
	tests := []struct {
		px, want float64
	}{
		{20, 0}, {120, 0.5}, {220, 1}, {-40, 0}, {500, 1},
	}
	for _, tt := range tests {
		if got := LinearValue(tt.px, 20, 200); got != tt.want {
			t.Errorf("LinearValue(%v) = %v, want %v", tt.px, got, tt.want)
		}
	}
	if got := LinearValue(50, 0, 0); got != 0 {
		t.Errorf("zero-width bar = %v", got)
	}
}

func TestRadialValue(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"top", 100, 50, 0},
		{"right", 150, 100, 0.25},
		{"bottom", 100, 150, 0.5},
		{"left", 50, 100, 0.75},
		{"top-right", 150, 50, 0.125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadialValue(100, 100, tt.px, tt.py)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RadialValue = %v, want %v", got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("RadialValue = %v outside [0, 1)", got)
			}
		})
	}
}

func TestRadialKnobInverse(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.8, 0.99} {
		x, y := RadialKnob(200, 200, 40, v)
		if got := RadialValue(200, 200, x, y); math.Abs(got-v) > 1e-9 {
			t.Errorf("RadialValue(RadialKnob(%v)) = %v", v, got)
		}
	}
}

func TestScrubsDrag(t *testing.T) {
	var s Scrubs
	s.Place(640, 480)

	// Press on the linear bar's midpoint.
	midX := int(s.Linear.X + s.Linear.W/2)
	barY := int(s.Linear.Y + s.Linear.H/2)
	v, ok := s.Update(Input{CursorX: midX, CursorY: barY, MouseDown: true, MouseJustDown: true})
	if !ok || math.Abs(v-0.5) > 0.01 {
		t.Fatalf("press = (%v, %v), want (0.5, true)", v, ok)
	}
	// Keep dragging off the bar.
	v, ok = s.Update(Input{CursorX: 10000, CursorY: 0, MouseDown: true})
	if !ok || v >= 1 || v < 0.999 {
		t.Errorf("drag = (%v, %v), want just under 1", v, ok)
	}
	// Release ends the drag.
	s.Update(Input{CursorX: 10000, CursorY: 0, MouseJustUp: true})
	if _, ok := s.Update(Input{CursorX: 10000, CursorY: 0}); ok {
		t.Error("value reported after release")
	}
}

func TestLinearScrubRightEndStaysInLoop(t *testing.T) {
	s := LinearScrub{X: 20, Y: 100, W: 200, H: 18}
	if _, ok := s.Update(Input{CursorX: 219, CursorY: 105, MouseDown: true, MouseJustDown: true}); !ok {
		t.Fatal("press on the bar produced no value")
	}
	v, ok := s.Update(Input{CursorX: 220, CursorY: 105, MouseJustUp: true})
	if !ok {
		t.Fatal("release frame produced no value")
	}
	if v >= 1 || 1-v > 1e-9 {
		t.Errorf("right end = %v, want the largest value below 1", v)
	}
	if s.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestScrubsRadialDrag(t *testing.T) {
	var s Scrubs
	s.Place(640, 480)

	cx, cy := int(s.Radial.CX), int(s.Radial.CY)
	r := int(s.Radial.R)
	v, ok := s.Update(Input{CursorX: cx + r, CursorY: cy, MouseDown: true, MouseJustDown: true})
	if !ok || math.Abs(v-0.25) > 1e-9 {
		t.Fatalf("press = (%v, %v), want (0.25, true)", v, ok)
	}
	if s.Linear.Dragging() {
		t.Error("linear bar grabbed by a radial press")
	}
	v, ok = s.Update(Input{CursorX: cx, CursorY: cy + 500, MouseDown: true})
	if !ok || math.Abs(v-0.5) > 1e-9 {
		t.Errorf("drag = (%v, %v), want (0.5, true)", v, ok)
	}
}

func TestScrubsIgnoreMissedPress(t *testing.T) {
	var s Scrubs
	s.Place(640, 480)
	if _, ok := s.Update(Input{CursorX: 5, CursorY: 5, MouseDown: true, MouseJustDown: true}); ok {
		t.Error("press outside both sliders produced a value")
	}
}
