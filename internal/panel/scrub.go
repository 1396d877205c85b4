package panel

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-sketch/internal/config"
)

// --- geometry ---

// LinearValue maps a pointer x coordinate on a bar starting at barX with
// width barW to [0, 1].
func LinearValue(px, barX, barW float64) float64 {
	if barW <= 0 {
		return 0
	}
	return clamp01((px - barX) / barW)
}

// RadialValue maps a pointer position around (cx, cy) to [0, 1): 0 at twelve
// o'clock, increasing clockwise.
func RadialValue(cx, cy, px, py float64) float64 {
	a := math.Atan2(px-cx, cy-py)
	v := a / (2 * math.Pi)
	if v < 0 {
		v++
	}
	if v >= 1 {
		v = 0
	}
	return v
}

// RadialKnob returns the knob centre for value v on a ring of radius r.
func RadialKnob(cx, cy, r, v float64) (float64, float64) {
	a := 2 * math.Pi * v
	return cx + r*math.Sin(a), cy - r*math.Cos(a)
}

// --- linear slider ---

// LinearScrub is a horizontal drag bar.
type LinearScrub struct {
	X, Y, W, H float64
	dragging   bool
}

func (s *LinearScrub) contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// Update returns the dragged value and true while the bar is being dragged,
// including the release frame. The value stays below 1 so that the right end
// of the bar is the end of the loop, not its start.
func (s *LinearScrub) Update(in Input) (float64, bool) {
	x, y := float64(in.CursorX), float64(in.CursorY)
	if in.MouseJustDown && s.contains(x, y) {
		s.dragging = true
	}
	if !s.dragging {
		return 0, false
	}
	if in.MouseJustUp || !in.MouseDown {
		s.dragging = false
	}
	return math.Min(LinearValue(x, s.X, s.W), loopEnd), true
}

// loopEnd is the largest scrub value short of a full loop.
var loopEnd = math.Nextafter(1, 0)

// Dragging reports whether a drag is in progress.
func (s *LinearScrub) Dragging() bool { return s.dragging }

func (s *LinearScrub) Draw(screen *ebiten.Image, v float64, accent color.Color) {
	x, y, w, h := float32(s.X), float32(s.Y), float32(s.W), float32(s.H)
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(v), h, accent, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	kx := x + w*float32(v)
	vector.DrawFilledCircle(screen, kx, y+h/2, h/2, color.White, true)
}

// --- radial slider ---

// RadialScrub is a ring dragged around its centre.
type RadialScrub struct {
	CX, CY, R float64
	dragging  bool
}

func (s *RadialScrub) contains(x, y float64) bool {
	dx, dy := x-s.CX, y-s.CY
	reach := s.R + config.RadialKnobRadius
	return dx*dx+dy*dy <= reach*reach
}

// Update returns the dragged value and true while the ring is being dragged.
// The exact centre has no angle and yields nothing.
func (s *RadialScrub) Update(in Input) (float64, bool) {
	x, y := float64(in.CursorX), float64(in.CursorY)
	if in.MouseJustDown && s.contains(x, y) {
		s.dragging = true
	}
	if !s.dragging {
		return 0, false
	}
	if in.MouseJustUp || !in.MouseDown {
		s.dragging = false
	}
	if x == s.CX && y == s.CY {
		return 0, false
	}
	return RadialValue(s.CX, s.CY, x, y), true
}

// Dragging reports whether a drag is in progress.
func (s *RadialScrub) Dragging() bool { return s.dragging }

func (s *RadialScrub) Draw(screen *ebiten.Image, v float64, accent color.Color) {
	cx, cy, r := float32(s.CX), float32(s.CY), float32(s.R)
	vector.DrawFilledCircle(screen, cx, cy, r, color.RGBA{R: 25, G: 30, B: 40, A: 160}, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, true)

	kx, ky := RadialKnob(s.CX, s.CY, s.R, v)
	vector.StrokeLine(screen, cx, cy, float32(kx), float32(ky), 2, accent, true)
	vector.DrawFilledCircle(screen, float32(kx), float32(ky), config.RadialKnobRadius, color.White, true)
}

// --- layout ---

// Scrubs groups both scrub inputs, placed relative to the canvas size.
type Scrubs struct {
	Linear LinearScrub
	Radial RadialScrub
}

// Place lays the sliders out along the bottom edge of a w×h canvas.
func (s *Scrubs) Place(w, h int) {
	m := float64(config.ScrubBarMargin)
	bh := float64(config.ScrubBarHeight)
	r := float64(config.RadialRadius)

	s.Linear.X = m
	s.Linear.Y = float64(h) - m - bh
	s.Linear.W = float64(w) - 2*m
	s.Linear.H = bh

	s.Radial.CX = float64(w) - m - r
	s.Radial.CY = s.Linear.Y - m - r
	s.Radial.R = r
}

// Update feeds input to both sliders and returns the new scrub value, if
// either produced one. The radial slider wins when both are hit.
func (s *Scrubs) Update(in Input) (float64, bool) {
	if v, ok := s.Radial.Update(in); ok {
		return v, true
	}
	if s.Radial.Dragging() {
		return 0, false
	}
	return s.Linear.Update(in)
}

// Draw renders both sliders at playhead v.
func (s *Scrubs) Draw(screen *ebiten.Image, v float64, accent color.Color) {
	s.Linear.Draw(screen, v, accent)
	s.Radial.Draw(screen, v, accent)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
