package panel

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// row is one line of the panel: either a numeric slider or a colour slot.
type row struct {
	field sketch.Field
	spec  sketch.Spec
	color bool
}

// Panel turns pointer and keyboard input into parameter edits. It never
// mutates Parameters itself; it reads the latest rendered snapshot and emits
// one sketch.Edit per change.
type Panel struct {
	rows     []row
	selected int
	dragging int // row index, -1 when idle

	visible bool
	offset  float64 // x of the panel's left edge
	target  float64
	slide   *gween.Tween

	picker  ColorPicker
	picks   chan pickResult
	picking bool
	lastErr error

	log *slog.Logger
}

type pickResult struct {
	edit sketch.Edit
	err  error
}

// New builds a panel bound to the numeric field declarations followed by the
// four colour slots. A nil picker uses the native dialog.
func New(picker ColorPicker, log *slog.Logger) *Panel {
	if picker == nil {
		picker = DialogPicker
	}
	p := &Panel{
		dragging: -1,
		visible:  true,
		picker:   picker,
		picks:    make(chan pickResult, 1),
		log:      log,
	}
	for _, s := range sketch.Specs() {
		p.rows = append(p.rows, row{field: s.Field, spec: s})
	}
	for _, f := range sketch.ColorFields {
		p.rows = append(p.rows, row{field: f, color: true})
	}
	return p
}

// Visible reports whether the panel is shown or sliding in.
func (p *Panel) Visible() bool { return p.visible }

// Selected returns the highlighted field.
func (p *Panel) Selected() sketch.Field { return p.rows[p.selected].field }

// LastErr returns the most recent colour picker failure, if any.
func (p *Panel) LastErr() error { return p.lastErr }

// Update processes one frame of input against the current snapshot and
// returns the edits it produced. dt is the frame time in seconds.
func (p *Panel) Update(ctx context.Context, cur sketch.Parameters, in Input, dt float64) []sketch.Edit {
	var edits []sketch.Edit

	select {
	case r := <-p.picks:
		p.picking = false
		if r.err != nil {
			p.lastErr = r.err
			p.log.Warn("colour picker failed", "err", r.err)
		} else if r.edit.Field != "" {
			edits = append(edits, r.edit)
		}
	default:
	}

	if in.KeyToggle {
		p.Toggle()
	}
	if p.slide != nil {
		x, done := p.slide.Update(float32(dt))
		p.offset = float64(x)
		if done {
			p.offset = p.target
			p.slide = nil
		}
	}
	if !p.visible {
		p.dragging = -1
		return edits
	}

	if in.KeyUp {
		p.selected = (p.selected + len(p.rows) - 1) % len(p.rows)
	}
	if in.KeyDown {
		p.selected = (p.selected + 1) % len(p.rows)
	}

	r := p.rows[p.selected]
	if !r.color && (in.KeyLeft || in.KeyRight) {
		step := r.spec.Step
		if in.Shift {
			step *= 10
		}
		if in.KeyLeft {
			step = -step
		}
		if e, ok := p.numericEdit(r, cur, r.spec.Get(cur)+step); ok {
			edits = append(edits, e)
		}
	}
	if r.color && in.KeyEnter {
		p.pick(ctx, r.field, cur)
	}

	edits = append(edits, p.mouse(ctx, cur, in)...)
	return edits
}

func (p *Panel) mouse(ctx context.Context, cur sketch.Parameters, in Input) []sketch.Edit {
	x, y := float64(in.CursorX), float64(in.CursorY)

	if in.MouseJustDown {
		if i, ok := p.rowAt(x, y); ok {
			p.selected = i
			if p.rows[i].color {
				p.pick(ctx, p.rows[i].field, cur)
			} else if p.inBar(x) {
				p.dragging = i
			}
		}
	}
	if p.dragging < 0 {
		return nil
	}

	r := p.rows[p.dragging]
	if in.MouseJustUp || !in.MouseDown {
		p.dragging = -1
	}
	bx, bw := p.bar()
	v := r.spec.Min + LinearValue(x, bx, bw)*(r.spec.Max-r.spec.Min)
	if e, ok := p.numericEdit(r, cur, v); ok {
		return []sketch.Edit{e}
	}
	return nil
}

// numericEdit builds an edit for v unless it snaps to the current value.
func (p *Panel) numericEdit(r row, cur sketch.Parameters, v float64) (sketch.Edit, bool) {
	v = r.spec.Clamp(v)
	if math.Abs(v-r.spec.Get(cur)) < 1e-9 {
		return sketch.Edit{}, false
	}
	if r.spec.Integer {
		return sketch.Edit{Field: r.field, Value: int(v)}, true
	}
	return sketch.Edit{Field: r.field, Value: v}, true
}

// pick opens the colour picker off the game loop; the result arrives through
// p.picks on a later Update.
func (p *Panel) pick(ctx context.Context, f sketch.Field, cur sketch.Parameters) {
	if p.picking {
		return
	}
	p.picking = true
	current := cur.Palette()[slotOf(f)]
	go func() {
		c, err := p.picker(current)
		var res pickResult
		switch {
		case errors.Is(err, ErrCanceled):
		case err != nil:
			res.err = fmt.Errorf("pick %s: %w", f, err)
		default:
			res.edit = sketch.Edit{Field: f, Value: sketch.FormatColor(c)}
		}
		select {
		case p.picks <- res:
		case <-ctx.Done():
		}
	}()
}

// Toggle shows or hides the panel with an eased slide.
func (p *Panel) Toggle() {
	p.visible = !p.visible
	p.target = 0
	if !p.visible {
		p.target = -config.PanelWidth
	}
	p.slide = gween.New(float32(p.offset), float32(p.target), config.PanelSlideSecs, ease.OutCubic)
}

// --- layout ---

const (
	labelWidth = 110
	titleSpace = 18
)

func (p *Panel) rowTop(i int) float64 {
	return config.PanelPadding + titleSpace + float64(i*config.PanelRowHeight)
}

func (p *Panel) rowAt(x, y float64) (int, bool) {
	if x < p.offset || x > p.offset+config.PanelWidth {
		return 0, false
	}
	top := p.rowTop(0)
	if y < top {
		return 0, false
	}
	i := int((y - top) / config.PanelRowHeight)
	if i >= len(p.rows) {
		return 0, false
	}
	return i, true
}

// bar returns the x and width of the slider track of every numeric row.
func (p *Panel) bar() (float64, float64) {
	x := p.offset + config.PanelPadding + labelWidth
	return x, config.PanelWidth - labelWidth - 2*config.PanelPadding
}

func (p *Panel) inBar(x float64) bool {
	bx, bw := p.bar()
	return x >= bx && x <= bx+bw
}

// height is the panel's total height.
func (p *Panel) height() float64 {
	return p.rowTop(len(p.rows)) + config.PanelPadding
}

func slotOf(f sketch.Field) int {
	for i, cf := range sketch.ColorFields {
		if cf == f {
			return i
		}
	}
	return 0
}

// swatch converts a palette entry for drawing.
func swatch(pal sketch.Palette, f sketch.Field) color.RGBA {
	return pal[slotOf(f)]
}
