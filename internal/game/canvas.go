package game

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/pipeline"
	"github.com/iburimskiy/ripple-sketch/internal/render"
)

// ErrNoCanvas is returned when the drawing surface cannot be created.
var ErrNoCanvas = errors.New("no canvas")

// imageSurface adapts an off-screen ebiten image to render.Surface.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) Resize(w, h int) {
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
}

func (s *imageSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *imageSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

// Canvas is the pipeline's renderer. The coordinator goroutine draws into the
// off-screen image; the game loop blits it in Draw. mu keeps the two apart.
type Canvas struct {
	mu       sync.Mutex
	surface  imageSurface
	frame    pipeline.Frame
	hasFrame bool

	fps     *pipeline.FPSCounter
	fpsLast atomic.Int64
	now     func() time.Time

	// onFrame runs after each render.
	onFrame func(pipeline.Frame)
}

// NewCanvas allocates a w×h canvas.
func NewCanvas(w, h int) (*Canvas, error) {
	if w < config.MinCanvas || h < config.MinCanvas {
		return nil, fmt.Errorf("canvas %dx%d: %w", w, h, ErrNoCanvas)
	}
	c := &Canvas{now: time.Now}
	c.surface.Resize(w, h)
	c.fps = pipeline.NewFPSCounter(config.FPSWindowSecs*time.Second, func(n int) {
		c.fpsLast.Store(int64(n))
	})
	return c, nil
}

// Render implements pipeline.Renderer.
func (c *Canvas) Render(f pipeline.Frame) {
	c.mu.Lock()
	render.Render(&c.surface, f.Params, f.Playhead)
	c.frame, c.hasFrame = f, true
	c.mu.Unlock()

	c.fps.Observe(c.now())
	if c.onFrame != nil {
		c.onFrame(f)
	}
}

// Frame returns the most recently rendered frame.
func (c *Canvas) Frame() (pipeline.Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame, c.hasFrame
}

// FPS returns the frame count of the last completed one-second window. It
// drops to zero once rendering stops.
func (c *Canvas) FPS() int {
	c.fps.Sample(c.now())
	return int(c.fpsLast.Load())
}

// DrawTo blits the canvas onto screen.
func (c *Canvas) DrawTo(screen *ebiten.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface.img == nil {
		return
	}
	screen.DrawImage(c.surface.img, nil)
}
