package sketch

import (
	"fmt"
	"math"

	"github.com/iburimskiy/ripple-sketch/internal/config"
)

// Field names a tunable parameter. The names match the control panel labels.
type Field string

const (
	FieldWidth       Field = "width"
	FieldHeight      Field = "height"
	FieldDimension   Field = "dimension"
	FieldGapModifier Field = "gapModifier"
	FieldDepthScalar Field = "depthScalar"
	FieldBaseSize    Field = "baseSize"
	FieldColor1      Field = "color1"
	FieldColor2      Field = "color2"
	FieldColor3      Field = "color3"
	FieldColor4      Field = "color4"
	FieldDuration    Field = "duration"
)

// ColorFields lists the colour parameters in slot order.
var ColorFields = [4]Field{FieldColor1, FieldColor2, FieldColor3, FieldColor4}

// Edit is a single control-panel change: one field and its new value.
// Numeric fields take a float64 or int, colour fields a string token.
type Edit struct {
	Field Field
	Value any
}

func (e Edit) String() string {
	return fmt.Sprintf("%s=%v", e.Field, e.Value)
}

// Spec declares the slider bounds of a numeric field.
type Spec struct {
	Field   Field
	Min     float64
	Max     float64
	Step    float64
	Integer bool

	get func(Parameters) float64
	set func(*Parameters, float64)
}

// Get reads the field from p.
func (s Spec) Get(p Parameters) float64 { return s.get(p) }

// Clamp bounds v to [Min, Max] and snaps it to the step grid anchored at Min.
func (s Spec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if s.Integer {
		v = math.Round(v)
	}
	return v
}

var specs = []Spec{
	{
		Field: FieldWidth, Min: config.MinCanvas, Max: config.MaxCanvas, Step: config.CanvasStep, Integer: true,
		get: func(p Parameters) float64 { return float64(p.Width) },
		set: func(p *Parameters, v float64) { p.Width = int(v) },
	},
	{
		Field: FieldHeight, Min: config.MinCanvas, Max: config.MaxCanvas, Step: config.CanvasStep, Integer: true,
		get: func(p Parameters) float64 { return float64(p.Height) },
		set: func(p *Parameters, v float64) { p.Height = int(v) },
	},
	{
		Field: FieldDimension, Min: config.MinDimension, Max: config.MaxDimension, Step: 1, Integer: true,
		get: func(p Parameters) float64 { return float64(p.Dimension) },
		set: func(p *Parameters, v float64) { p.Dimension = int(v) },
	},
	{
		Field: FieldGapModifier, Min: config.MinGapModifier, Max: config.MaxGapModifier, Step: config.GapModifierStep,
		get: func(p Parameters) float64 { return p.GapModifier },
		set: func(p *Parameters, v float64) { p.GapModifier = v },
	},
	{
		Field: FieldDepthScalar, Min: config.MinDepthScalar, Max: config.MaxDepthScalar, Step: config.DepthScalarStep,
		get: func(p Parameters) float64 { return p.DepthScalar },
		set: func(p *Parameters, v float64) { p.DepthScalar = v },
	},
	{
		Field: FieldBaseSize, Min: config.MinBaseSize, Max: config.MaxBaseSize, Step: config.BaseSizeStep,
		get: func(p Parameters) float64 { return p.BaseSize },
		set: func(p *Parameters, v float64) { p.BaseSize = v },
	},
	{
		Field: FieldDuration, Min: config.MinDuration, Max: config.MaxDuration, Step: config.DurationStep,
		get: func(p Parameters) float64 { return p.Duration },
		set: func(p *Parameters, v float64) { p.Duration = v },
	},
}

// Specs returns the numeric field declarations in panel order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// SpecFor looks up the declaration of a numeric field.
func SpecFor(f Field) (Spec, bool) {
	for _, s := range specs {
		if s.Field == f {
			return s, true
		}
	}
	return Spec{}, false
}

// Apply folds one edit into prev and returns the new snapshot. Fields the
// edit does not name keep their previous value. On error prev is returned
// unchanged.
func Apply(prev Parameters, e Edit) (Parameters, error) {
	if s, ok := SpecFor(e.Field); ok {
		v, ok := number(e.Value)
		if !ok {
			return prev, fmt.Errorf("%s: %T is not numeric: %w", e.Field, e.Value, ErrInvalidValue)
		}
		next := prev
		s.set(&next, s.Clamp(v))
		return next, nil
	}

	slot := colorSlot(e.Field)
	if slot < 0 {
		return prev, fmt.Errorf("%q: %w", e.Field, ErrUnknownField)
	}
	tok, ok := e.Value.(string)
	if !ok {
		return prev, fmt.Errorf("%s: %T is not a colour token: %w", e.Field, e.Value, ErrInvalidValue)
	}
	if _, err := ParseColor(tok); err != nil {
		return prev, fmt.Errorf("%s: %w", e.Field, err)
	}
	next := prev
	switch slot {
	case 0:
		next.Color1 = tok
	case 1:
		next.Color2 = tok
	case 2:
		next.Color3 = tok
	case 3:
		next.Color4 = tok
	}
	return next, nil
}

func colorSlot(f Field) int {
	for i, cf := range ColorFields {
		if cf == f {
			return i
		}
	}
	return -1
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
