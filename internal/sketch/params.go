// Package sketch holds the tunable parameters of the ripple sketch and the
// reducer that folds control-panel edits into the running snapshot.
package sketch

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/ripple-sketch/internal/config"
)

var (
	// ErrUnknownField is returned by Apply for an edit naming no parameter.
	ErrUnknownField = errors.New("unknown parameter")
	// ErrInvalidValue is returned by Apply when the value has the wrong kind
	// or cannot be parsed.
	ErrInvalidValue = errors.New("invalid parameter value")
)

// Parameters is the full set of user-tunable sketch settings. It is a value
// type: every edit produces a new snapshot and the renderer only ever sees a
// fully populated one.
type Parameters struct {
	Width     int
	Height    int
	Dimension int

	// GapModifier is exposed on the panel but not consumed by projection.
	GapModifier float64
	DepthScalar float64
	BaseSize    float64

	Color1 string // background and shallow bucket
	Color2 string
	Color3 string
	Color4 string // reserved accent, never bucketed

	// Duration is the loop period in seconds. Zero means static.
	Duration float64
}

// Defaults returns the startup snapshot.
func Defaults() Parameters {
	return Parameters{
		Width:       config.DefaultWidth,
		Height:      config.DefaultHeight,
		Dimension:   config.DefaultDimension,
		GapModifier: config.DefaultGapModifier,
		DepthScalar: config.DefaultDepthScalar,
		BaseSize:    config.DefaultBaseSize,
		Color1:      config.DefaultColor1,
		Color2:      config.DefaultColor2,
		Color3:      config.DefaultColor3,
		Color4:      config.DefaultColor4,
		Duration:    config.DefaultDuration,
	}
}

// Animated reports whether the playhead is clock driven.
func (p Parameters) Animated() bool {
	return p.Duration > 0
}

// Validate checks every field against its declared bounds and every colour
// token for parseability.
func (p Parameters) Validate() error {
	for _, s := range specs {
		v := s.get(p)
		if v < s.Min || v > s.Max || math.IsNaN(v) {
			return fmt.Errorf("%s = %v outside [%v, %v]: %w", s.Field, v, s.Min, s.Max, ErrInvalidValue)
		}
	}
	if p.DepthScalar <= 0 || p.BaseSize <= 0 {
		return fmt.Errorf("depth scalar and base size must be positive: %w", ErrInvalidValue)
	}
	for i, tok := range p.colors() {
		if _, err := ParseColor(tok); err != nil {
			return fmt.Errorf("color%d: %w", i+1, err)
		}
	}
	return nil
}

func (p Parameters) colors() [4]string {
	return [4]string{p.Color1, p.Color2, p.Color3, p.Color4}
}
