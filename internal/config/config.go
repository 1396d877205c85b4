package config

const (
	WindowTitle = "Ripple Sketch - Tab: panel, Space: play/pause, Esc/Q: quit"

	// Canvas defaults and bounds (px)
	DefaultWidth  = 640
	DefaultHeight = 640
	MinCanvas     = 64
	MaxCanvas     = 2048
	CanvasStep    = 16

	// Grid
	DefaultDimension = 24
	MinDimension     = 1
	MaxDimension     = 128

	// Projection scalars
	DefaultGapModifier = 1.0
	MinGapModifier     = 0.0
	MaxGapModifier     = 4.0
	GapModifierStep    = 0.05

	DefaultDepthScalar = 1.0
	MinDepthScalar     = 0.1
	MaxDepthScalar     = 10.0
	DepthScalarStep    = 0.1

	DefaultBaseSize = 12.0
	MinBaseSize     = 0.5
	MaxBaseSize     = 64.0
	BaseSizeStep    = 0.5

	// Animation (seconds, 0 = static)
	DefaultDuration = 5.0
	MinDuration     = 0.0
	MaxDuration     = 30.0
	DurationStep    = 0.5

	// Palette
	DefaultColor1 = "#0b0c10"
	DefaultColor2 = "#1f6f8b"
	DefaultColor3 = "#99a8b2"
	DefaultColor4 = "#e6d5b8"

	// Depth buckets
	BucketLow  = 0.33
	BucketHigh = 0.66

	// Pipeline
	EditQueueSize  = 64
	ScrubQueueSize = 16
	FPSWindowSecs  = 1

	// Panel layout
	PanelWidth     = 260
	PanelRowHeight = 22
	PanelPadding   = 10
	PanelSlideSecs = 0.25

	// Scrub sliders
	ScrubBarHeight   = 18
	ScrubBarMargin   = 20
	RadialRadius     = 36
	RadialKnobRadius = 6

	// Loop cue
	CueSampleRate = 44100
	CueFrequency  = 880.0
	CueLengthMs   = 40
	CueRingSize   = 4096
)
