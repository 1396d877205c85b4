// Package render draws one frame of the ripple sheet onto a Surface.
package render

import (
	"image/color"

	"github.com/iburimskiy/ripple-sketch/internal/field"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// Surface is the minimal 2D drawing context the renderer needs.
type Surface interface {
	// Resize sizes the surface to w×h. Implementations ignore calls that do
	// not change the size.
	Resize(w, h int)
	// Fill paints the whole surface with c.
	Fill(c color.Color)
	// FillCircle draws a filled circle centred on (x, y).
	FillCircle(x, y, r float64, c color.Color)
}

// Render draws the frame for (p, playhead) onto s: resize, background fill
// with color1, then one circle per generated point in generation order.
func Render(s Surface, p sketch.Parameters, playhead float64) {
	pal := p.Palette()

	s.Resize(p.Width, p.Height)
	s.Fill(pal[0])

	for pt := range field.Generate(p.Dimension, playhead) {
		c := field.Project(pt, p)
		s.FillCircle(c.X, c.Y, c.Radius(), pal[c.Bucket])
	}
}
