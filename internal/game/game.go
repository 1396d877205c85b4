// Package game runs the ripple sketch inside an Ebitengine window.
package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/cue"
	"github.com/iburimskiy/ripple-sketch/internal/panel"
	"github.com/iburimskiy/ripple-sketch/internal/pipeline"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// Options configures a Game.
type Options struct {
	Params sketch.Parameters
	Scrub  float64
	Audio  bool
	Picker panel.ColorPicker
	Log    *slog.Logger
}

// loopCue is the part of cue.Cue the game uses.
type loopCue interface {
	Trigger()
	Level() float64
	Close()
}

type Game struct {
	ctx    context.Context
	log    *slog.Logger
	params sketch.Parameters // startup snapshot, used until the first frame lands

	// local folds every submitted edit, so the panel steps from the value it
	// last sent even while the pipeline is still rendering an older one.
	local sketch.Parameters

	clock  *pipeline.FrameClock
	coord  *pipeline.Coordinator
	canvas *Canvas
	panel  *panel.Panel
	scrubs panel.Scrubs
	cue    loopCue

	// Space toggles animation by editing duration; this remembers what to
	// restore.
	resumeDuration float64

	winW, winH int
	lastErr    error
}

// New validates the startup parameters and builds the pipeline. Invalid
// parameters or a missing canvas are fatal.
func New(ctx context.Context, opts Options) (*Game, error) {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, fmt.Errorf("startup parameters: %w", err)
	}
	canvas, err := NewCanvas(opts.Params.Width, opts.Params.Height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:            ctx,
		log:            opts.Log,
		params:         opts.Params,
		local:          opts.Params,
		clock:          pipeline.NewFrameClock(),
		canvas:         canvas,
		panel:          panel.New(opts.Picker, opts.Log.With("component", "panel")),
		resumeDuration: opts.Params.Duration,
	}
	if g.resumeDuration == 0 {
		g.resumeDuration = config.DefaultDuration
	}
	g.coord = pipeline.New(opts.Params, g.clock, canvas,
		pipeline.WithLogger(opts.Log.With("component", "pipeline")),
		pipeline.WithScrub(opts.Scrub),
	)

	if opts.Audio {
		c, err := cue.New(opts.Log.With("component", "cue"))
		if err != nil {
			// The cue is optional; run silent.
			g.log.Warn("loop cue disabled", "err", err)
		} else {
			g.cue = c
			canvas.onFrame = g.onFrame
		}
	}
	return g, nil
}

// Run starts the pipeline and blocks in the ebiten loop until the window
// closes or ctx is cancelled.
func (g *Game) Run() error {
	ctx, cancel := context.WithCancel(g.ctx)
	defer cancel()
	g.ctx = ctx

	done := make(chan error, 1)
	go func() { done <- g.coord.Run(ctx) }()

	g.clock.Pulse(time.Now())
	g.resizeWindow(g.params.Width, g.params.Height)
	ebiten.SetWindowTitle(config.WindowTitle)

	err := ebiten.RunGame(g)
	cancel()
	if perr := <-done; perr != nil && !errors.Is(perr, context.Canceled) {
		g.log.Error("pipeline stopped", "err", perr)
	}
	if g.cue != nil {
		g.cue.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) current() pipeline.Frame {
	if f, ok := g.canvas.Frame(); ok {
		return f
	}
	return pipeline.Frame{Params: g.params}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.clock.Pulse(time.Now())

	cur := g.current().Params
	if cur.Width != g.winW || cur.Height != g.winH {
		g.resizeWindow(cur.Width, cur.Height)
	}

	in := panel.ReadInput()
	for _, e := range g.panel.Update(g.ctx, g.local, in, 1/float64(ebiten.TPS())) {
		g.submit(e)
	}

	g.scrubs.Place(cur.Width, cur.Height)
	if v, ok := g.scrubs.Update(in); ok {
		if err := g.coord.Scrub(g.ctx, v); err != nil {
			return ebiten.Termination
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) submit(e sketch.Edit) {
	if err := g.coord.Edit(g.ctx, e); err != nil {
		g.lastErr = err
		return
	}
	if next, err := sketch.Apply(g.local, e); err == nil {
		g.local = next
	}
}

// togglePlay freezes the animation where it is and resumes it with the last
// non-zero duration.
func (g *Game) togglePlay() {
	if g.local.Animated() {
		if err := g.coord.Pause(g.ctx); err != nil {
			g.lastErr = err
			return
		}
		g.resumeDuration = g.local.Duration
		g.local.Duration = 0
		return
	}
	g.submit(sketch.Edit{Field: sketch.FieldDuration, Value: g.resumeDuration})
}

func (g *Game) resizeWindow(w, h int) {
	g.winW, g.winH = w, h
	ebiten.SetWindowSize(w, h)
}

// onFrame runs on the pipeline goroutine after each render.
func (g *Game) onFrame(f pipeline.Frame) {
	if f.Wrapped {
		g.cue.Trigger()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.DrawTo(screen)

	f := g.current()
	pal := f.Params.Palette()
	g.scrubs.Draw(screen, f.Playhead, pal[3])
	g.panel.Draw(screen, g.local)
	g.drawStatus(screen, f)
}

func (g *Game) drawStatus(screen *ebiten.Image, f pipeline.Frame) {
	h := f.Params.Height

	status := fmt.Sprintf("FPS: %d  playhead %.3f", g.canvas.FPS(), f.Playhead)
	if f.Params.Animated() {
		status += "  " + formatLoop(f.Playhead*f.Params.Duration) + " / " + formatLoop(f.Params.Duration)
	} else {
		status += "  static - Space to play"
	}
	err := g.lastErr
	if err == nil {
		err = g.panel.LastErr()
	}
	if err != nil {
		status += " | Error: " + err.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.ScrubBarMargin, h-config.ScrubBarMargin-config.ScrubBarHeight-18)

	if g.cue != nil {
		level := g.cue.Level()
		x := float32(f.Params.Width - config.ScrubBarMargin)
		vector.DrawFilledCircle(screen, x, float32(config.ScrubBarMargin), 5, color.NRGBA{R: 255, G: 220, B: 120, A: uint8(60 + 195*level)}, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	p := g.current().Params
	return p.Width, p.Height
}
