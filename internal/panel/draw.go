package panel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// Draw renders the panel for snapshot cur. Colour slot 4 is the accent.
func (p *Panel) Draw(screen *ebiten.Image, cur sketch.Parameters) {
	if p.offset <= -config.PanelWidth {
		return
	}
	pal := cur.Palette()
	accent := pal[3]

	x := float32(p.offset)
	vector.DrawFilledRect(screen, x, 0, config.PanelWidth, float32(p.height()), color.RGBA{R: 15, G: 18, B: 26, A: 220}, false)
	vector.StrokeRect(screen, x, 0, config.PanelWidth, float32(p.height()), 1, accent, false)
	ebitenutil.DebugPrintAt(screen, "parameters", int(p.offset)+config.PanelPadding, config.PanelPadding-4)

	bx, bw := p.bar()
	for i, r := range p.rows {
		top := p.rowTop(i)
		if i == p.selected {
			vector.DrawFilledRect(screen, x, float32(top), config.PanelWidth, config.PanelRowHeight, color.RGBA{R: 60, G: 70, B: 95, A: 160}, false)
		}
		ebitenutil.DebugPrintAt(screen, label(r, cur), int(p.offset)+config.PanelPadding, int(top)+3)

		y := float32(top) + config.PanelRowHeight/2
		if r.color {
			sw := swatch(pal, r.field)
			vector.DrawFilledRect(screen, float32(bx), y-6, float32(bw), 12, sw, false)
			vector.StrokeRect(screen, float32(bx), y-6, float32(bw), 12, 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
			continue
		}
		frac := (r.spec.Get(cur) - r.spec.Min) / (r.spec.Max - r.spec.Min)
		vector.StrokeLine(screen, float32(bx), y, float32(bx+bw), y, 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)
		vector.DrawFilledRect(screen, float32(bx), y-1, float32(bw*frac), 2, accent, false)
		vector.DrawFilledCircle(screen, float32(bx+bw*frac), y, 5, color.White, true)
	}
}

func label(r row, cur sketch.Parameters) string {
	if r.color {
		return fmt.Sprintf("%-8s", r.field)
	}
	v := r.spec.Get(cur)
	if r.spec.Integer {
		return fmt.Sprintf("%-11s %4d", r.field, int(v))
	}
	return fmt.Sprintf("%-11s %4.2f", r.field, v)
}
