// Package cue plays a short click each time the animated playhead loops.
package cue

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ripple-sketch/internal/config"
)

// Cue owns the speaker. Clicks are mixed into a single always-playing
// stream so triggering never reinitializes the device.
type Cue struct {
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	tap        *levelTap
	log        *slog.Logger
}

// New initializes the speaker and starts the mixer.
func New(log *slog.Logger) (*Cue, error) {
	sr := beep.SampleRate(config.CueSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	c := &Cue{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
		log:        log,
	}
	c.tap = newLevelTap(c.mixer, config.CueRingSize)
	speaker.Play(c.tap)
	log.Debug("loop cue ready", "sampleRate", int(sr))
	return c, nil
}

// Trigger queues one click.
func (c *Cue) Trigger() {
	speaker.Lock()
	c.mixer.Add(click(c.sampleRate, config.CueFrequency, config.CueLengthMs*time.Millisecond))
	speaker.Unlock()
}

// Level returns the recent output level in [0, 1].
func (c *Cue) Level() float64 {
	return math.Min(1, c.tap.level(c.sampleRate.N(time.Second/30))*2)
}

// Close stops playback.
func (c *Cue) Close() {
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}

// click is a sine burst with a linear decay envelope.
func click(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	pos := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1 - float64(pos)/float64(n)
			if env < 0 {
				env = 0
			}
			v := 0.5 * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
	return beep.Take(n, tone)
}
