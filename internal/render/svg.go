package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// SVGSurface writes the frame as an SVG document. Coordinates are rounded to
// whole pixels. The document is opened by the first Resize and closed by
// Close; later resizes are ignored.
type SVGSurface struct {
	canvas  *svg.SVG
	w, h    int
	started bool
	circles int
}

func NewSVGSurface(w io.Writer) *SVGSurface {
	return &SVGSurface{canvas: svg.New(w)}
}

func (s *SVGSurface) Resize(w, h int) {
	if s.started {
		return
	}
	s.w, s.h = w, h
	s.canvas.Start(w, h)
	s.canvas.Title("ripple sketch")
	s.started = true
}

func (s *SVGSurface) Fill(c color.Color) {
	s.canvas.Rect(0, 0, s.w, s.h, fill(c))
}

func (s *SVGSurface) FillCircle(x, y, r float64, c color.Color) {
	s.canvas.Circle(int(math.Round(x)), int(math.Round(y)), int(math.Round(r)), fill(c))
	s.circles++
}

// Circles reports how many circles were written.
func (s *SVGSurface) Circles() int { return s.circles }

// Close terminates the document.
func (s *SVGSurface) Close() error {
	if !s.started {
		return fmt.Errorf("svg surface: nothing rendered")
	}
	s.canvas.End()
	return nil
}

func fill(c color.Color) string {
	return "fill:" + sketch.FormatColor(c)
}
