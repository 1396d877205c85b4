package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/iburimskiy/ripple-sketch/internal/field"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

type drawCall struct {
	op      string
	w, h    int
	x, y, r float64
	c       color.Color
}

// recorder is a Surface that records every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) Resize(w, h int)    { r.calls = append(r.calls, drawCall{op: "resize", w: w, h: h}) }
func (r *recorder) Fill(c color.Color) { r.calls = append(r.calls, drawCall{op: "fill", c: c}) }
func (r *recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", x: x, y: y, r: rad, c: c})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func endToEndParams() sketch.Parameters {
	p := sketch.Defaults()
	p.Width, p.Height = 640, 640
	p.Dimension = 1
	p.DepthScalar = 1
	p.BaseSize = 5
	p.Color1, p.Color2, p.Color3 = "#000", "#111", "#222"
	return p
}

func TestRenderEndToEnd(t *testing.T) {
	rec := &recorder{}
	Render(rec, endToEndParams(), 0)

	if len(rec.calls) != 6 {
		t.Fatalf("got %d calls, want resize + fill + 4 circles", len(rec.calls))
	}
	if c := rec.calls[0]; c.op != "resize" || c.w != 640 || c.h != 640 {
		t.Errorf("calls[0] = %+v, want resize 640x640", c)
	}
	if c := rec.calls[1]; c.op != "fill" || c.c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("calls[1] = %+v, want fill #000", c)
	}
	if n := rec.count("circle"); n != 4 {
		t.Errorf("circle draws = %d, want 4", n)
	}
}

func TestRenderCircleGeometry(t *testing.T) {
	p := endToEndParams()
	rec := &recorder{}
	Render(rec, p, 0)

	var i int
	for pt := range field.Generate(1, 0) {
		want := field.Project(pt, p)
		got := rec.calls[2+i]
		if got.x != want.X || got.y != want.Y || got.r != want.Diameter/2 {
			t.Errorf("circle %d = (%v,%v,r=%v), want (%v,%v,r=%v)", i, got.x, got.y, got.r, want.X, want.Y, want.Diameter/2)
		}
		i++
	}
	// (0,0) is the last point and sits at the centre with zero radius.
	last := rec.calls[len(rec.calls)-1]
	if last.x != 320 || last.y != 320 || last.r != 0 {
		t.Errorf("last circle = %+v, want centre with r=0", last)
	}
}

func TestRenderBucketsColours(t *testing.T) {
	p := endToEndParams()
	p.Dimension = 8
	rec := &recorder{}
	Render(rec, p, 0.5)

	pal := p.Palette()
	idx := 2
	for pt := range field.Generate(p.Dimension, 0.5) {
		want := pal[field.BucketOf(pt.Z)]
		if got := rec.calls[idx].c; got != want {
			t.Fatalf("circle %d colour = %v, want %v (z=%v)", idx-2, got, want, pt.Z)
		}
		if rec.calls[idx].c == pal[3] && pal[3] != pal[0] {
			t.Fatalf("colour4 used for circle %d", idx-2)
		}
		idx++
	}
	if rec.count("circle") != field.Count(8) {
		t.Errorf("circle draws = %d, want %d", rec.count("circle"), field.Count(8))
	}
}

// --- SVGSurface ---

func TestSVGSurface(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVGSurface(&buf)
	Render(s, endToEndParams(), 0)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `width="640"`) || !strings.Contains(out, `height="640"`) {
		t.Errorf("svg header missing size:\n%s", out)
	}
	if n := strings.Count(out, "<circle"); n != 4 {
		t.Errorf("<circle count = %d, want 4", n)
	}
	if s.Circles() != 4 {
		t.Errorf("Circles() = %d, want 4", s.Circles())
	}
	if !strings.Contains(out, "fill:#000000") {
		t.Errorf("background fill missing:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("document not closed")
	}
}

func TestSVGSurfaceCloseEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSVGSurface(&buf).Close(); err == nil {
		t.Error("Close() on empty surface should fail")
	}
}
