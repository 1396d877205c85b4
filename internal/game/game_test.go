package game

import (
	"context"
	"log/slog"
	"testing"

	"github.com/iburimskiy/ripple-sketch/internal/panel"
	"github.com/iburimskiy/ripple-sketch/internal/pipeline"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

type countingCue struct {
	triggers int
}

func (c *countingCue) Trigger()       { c.triggers++ }
func (c *countingCue) Level() float64 { return 0 }
func (c *countingCue) Close()         {}

// newTestGame builds a game around a coordinator that is never run; its
// queues are large enough to absorb the edits a test submits.
func newTestGame(p sketch.Parameters) *Game {
	coord := pipeline.New(p, pipeline.NewFrameClock(), pipeline.RendererFunc(func(pipeline.Frame) {}))
	return &Game{
		ctx:            context.Background(),
		log:            slog.New(slog.DiscardHandler),
		params:         p,
		local:          p,
		coord:          coord,
		resumeDuration: p.Duration,
	}
}

func TestOnFrameClicksOnlyOnClockWrap(t *testing.T) {
	c := &countingCue{}
	g := &Game{cue: c}

	p := sketch.Defaults()
	frames := []pipeline.Frame{
		{Params: p, Playhead: 0.9},
		{Params: p, Playhead: 0.2}, // scrubbed back
		{Params: p, Playhead: 0.05, Wrapped: true},
		{Params: p, Playhead: 0.1},
	}
	for _, f := range frames {
		g.onFrame(f)
	}
	if c.triggers != 1 {
		t.Errorf("triggers = %d, want 1", c.triggers)
	}
}

func TestPanelStepsFoldIntoLocalSnapshot(t *testing.T) {
	g := newTestGame(sketch.Defaults())
	pn := panel.New(nil, slog.New(slog.DiscardHandler))
	if pn.Selected() != sketch.FieldWidth {
		t.Fatalf("selected = %s, want width", pn.Selected())
	}

	// Nothing renders between the two key repeats.
	for range 2 {
		for _, e := range pn.Update(g.ctx, g.local, panel.Input{KeyRight: true}, 1.0/60) {
			g.submit(e)
		}
	}
	want := sketch.Defaults().Width + 32
	if g.local.Width != want {
		t.Errorf("local width = %d, want %d", g.local.Width, want)
	}
}

func TestTogglePlay(t *testing.T) {
	p := sketch.Defaults()
	p.Duration = 5
	g := newTestGame(p)

	g.togglePlay()
	if g.local.Duration != 0 || g.resumeDuration != 5 {
		t.Fatalf("after pause: duration %v resume %v, want 0 and 5", g.local.Duration, g.resumeDuration)
	}
	g.togglePlay()
	if g.local.Duration != 5 {
		t.Errorf("after resume: duration %v, want 5", g.local.Duration)
	}
	if g.lastErr != nil {
		t.Errorf("lastErr = %v", g.lastErr)
	}
}
