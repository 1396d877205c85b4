package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/game"
	"github.com/iburimskiy/ripple-sketch/internal/render"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

var (
	widthFlag     = flag.Int("width", config.DefaultWidth, "canvas width in pixels")
	heightFlag    = flag.Int("height", config.DefaultHeight, "canvas height in pixels")
	dimensionFlag = flag.Int("dimension", config.DefaultDimension, "grid half-extent")
	durationFlag  = flag.Float64("duration", config.DefaultDuration, "loop length in seconds, 0 for a static sketch")
	playheadFlag  = flag.Float64("playhead", 0, "initial scrub position in [0, 1)")
	audioFlag     = flag.Bool("audio", false, "click on every loop")
	exportFlag    = flag.String("export", "", "render one frame to this SVG file and exit")
	verboseFlag   = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params, err := startupParams()
	if err != nil {
		log.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	if *exportFlag != "" {
		if err := export(*exportFlag, params, *playheadFlag); err != nil {
			log.Error("export failed", "err", err)
			os.Exit(1)
		}
		log.Info("frame exported", "path", *exportFlag)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(ctx, game.Options{
		Params: params,
		Scrub:  *playheadFlag,
		Audio:  *audioFlag,
		Log:    log,
	})
	if err != nil {
		log.Error("init failed", "err", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		log.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

// startupParams folds the flags into the defaults through the same reducer
// the control panel uses, so out-of-range flags are clamped.
func startupParams() (sketch.Parameters, error) {
	p := sketch.Defaults()
	edits := []sketch.Edit{
		{Field: sketch.FieldWidth, Value: *widthFlag},
		{Field: sketch.FieldHeight, Value: *heightFlag},
		{Field: sketch.FieldDimension, Value: *dimensionFlag},
		{Field: sketch.FieldDuration, Value: *durationFlag},
	}
	for _, e := range edits {
		next, err := sketch.Apply(p, e)
		if err != nil {
			return p, err
		}
		p = next
	}
	return p, p.Validate()
}

func export(path string, p sketch.Parameters, playhead float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	s := render.NewSVGSurface(f)
	playhead = math.Mod(playhead, 1)
	if playhead < 0 {
		playhead++
	}
	render.Render(s, p, playhead)
	if err := s.Close(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
