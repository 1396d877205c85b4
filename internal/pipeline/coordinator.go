// Package pipeline merges parameter edits, scrub input and the animation
// clock into a single ordered stream of frames and renders each novel frame
// exactly once.
package pipeline

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// Frame is one (parameters, playhead) pair handed to the renderer.
// Wrapped is set on the first frame after the clock carried the playhead
// past the end of the loop. Scrubs and edits never set it.
type Frame struct {
	Params   sketch.Parameters
	Playhead float64
	Wrapped  bool
}

// Renderer draws a frame. Render is only ever called from the coordinator's
// Run goroutine, one call at a time.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (f RendererFunc) Render(fr Frame) { f(fr) }

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithScrub seeds the scrub value used before any scrub input arrives.
func WithScrub(v float64) Option {
	return func(c *Coordinator) { c.scrub = wrap(v) }
}

// Coordinator owns the running Parameters snapshot and the playhead. All of
// its state below the channels is touched only by Run.
type Coordinator struct {
	clock    Clock
	renderer Renderer
	log      *slog.Logger

	edits  chan sketch.Edit
	scrubs chan float64
	pauses chan struct{}

	params   sketch.Parameters
	scrub    float64
	elapsed  time.Duration
	playhead float64
	loops    float64 // whole loops completed by the current subscription
	wrapped  bool    // a loop completed since the last rendered frame

	ticks      <-chan time.Duration
	cancelTick func()

	last     Frame
	rendered bool
	frames   atomic.Uint64
}

// New creates a coordinator starting from initial.
func New(initial sketch.Parameters, clock Clock, r Renderer, opts ...Option) *Coordinator {
	c := &Coordinator{
		clock:    clock,
		renderer: r,
		log:      slog.New(slog.DiscardHandler),
		edits:    make(chan sketch.Edit, config.EditQueueSize),
		scrubs:   make(chan float64, config.ScrubQueueSize),
		pauses:   make(chan struct{}, 1),
		params:   initial,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Edit queues a parameter edit.
func (c *Coordinator) Edit(ctx context.Context, e sketch.Edit) error {
	select {
	case c.edits <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Scrub queues a scrub value in [0, 1]. Values outside wrap around.
func (c *Coordinator) Scrub(ctx context.Context, v float64) error {
	select {
	case c.scrubs <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pause freezes the animation at the current playhead: the scrub takes the
// playhead's value and duration drops to zero in one step. Pausing a static
// sketch does nothing.
func (c *Coordinator) Pause(ctx context.Context) error {
	select {
	case c.pauses <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Frames reports how many frames have been rendered.
func (c *Coordinator) Frames() uint64 {
	return c.frames.Load()
}

// Run renders the initial frame, then processes edits, scrubs and clock
// ticks until ctx is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	defer c.stopClock()

	c.restartClock()
	c.emit()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-c.edits:
			c.applyEdit(e)
		case v := <-c.scrubs:
			c.applyScrub(v)
		case <-c.pauses:
			c.pause()
		case el := <-c.ticks:
			c.advance(el)
		}
		c.emit()
	}
}

func (c *Coordinator) applyEdit(e sketch.Edit) {
	next, err := sketch.Apply(c.params, e)
	if err != nil {
		c.log.Warn("edit dropped", "edit", e.String(), "err", err)
		return
	}
	prevDuration := c.params.Duration
	c.params = next
	c.log.Debug("edit applied", "edit", e.String())

	if next.Duration != prevDuration {
		c.restartClock()
	}
}

func (c *Coordinator) applyScrub(v float64) {
	c.scrub = wrap(v)
	c.loops = c.loopCount()
	c.playhead = c.phase()
}

func (c *Coordinator) advance(el time.Duration) {
	c.elapsed = el
	if n := c.loopCount(); n > c.loops {
		c.wrapped = true
		c.loops = n
	}
	c.playhead = c.phase()
}

func (c *Coordinator) pause() {
	if !c.params.Animated() {
		return
	}
	c.scrub = c.playhead
	c.applyEdit(sketch.Edit{Field: sketch.FieldDuration, Value: 0.0})
}

// restartClock drops any in-flight subscription and, when animated, starts a
// new one whose phase begins at the current scrub value.
func (c *Coordinator) restartClock() {
	c.stopClock()
	c.elapsed = 0
	c.loops = 0
	c.wrapped = false
	if c.params.Animated() {
		c.ticks, c.cancelTick = c.clock.Subscribe()
		c.log.Debug("clock subscribed", "duration", c.params.Duration, "phase", c.scrub)
	}
	c.playhead = c.phase()
}

func (c *Coordinator) stopClock() {
	if c.cancelTick != nil {
		c.cancelTick()
		c.log.Debug("clock cancelled")
	}
	c.ticks = nil
	c.cancelTick = nil
}

func (c *Coordinator) phase() float64 {
	if !c.params.Animated() {
		return c.scrub
	}
	return wrap(c.scrub + c.elapsed.Seconds()/c.params.Duration)
}

// loopCount is the number of loop boundaries the unwrapped phase has
// crossed.
func (c *Coordinator) loopCount() float64 {
	if !c.params.Animated() {
		return 0
	}
	return math.Floor(c.scrub + c.elapsed.Seconds()/c.params.Duration)
}

func (c *Coordinator) emit() {
	f := Frame{Params: c.params, Playhead: c.playhead}
	if c.rendered && f == c.last {
		return
	}
	f.Wrapped = c.wrapped
	c.wrapped = false
	c.renderer.Render(f)
	f.Wrapped = false
	c.last = f
	c.rendered = true
	c.frames.Add(1)
}

// wrap maps v into [0, 1).
func wrap(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v -= math.Floor(v)
	if v >= 1 {
		v = 0
	}
	return v
}
