// Package panel implements the on-canvas control panel: parameter sliders,
// colour pickers and the two scrub inputs that drive the playhead.
package panel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame of pointer and keyboard state. The panel consumes it
// instead of querying ebiten directly so that its logic runs in tests.
type Input struct {
	CursorX, CursorY int

	MouseDown     bool
	MouseJustDown bool
	MouseJustUp   bool

	KeyUp, KeyDown    bool // just pressed
	KeyLeft, KeyRight bool // just pressed or repeating
	KeyEnter          bool
	KeyToggle         bool
	Shift             bool
}

// ReadInput samples the current ebiten input state.
func ReadInput() Input {
	x, y := ebiten.CursorPosition()
	return Input{
		CursorX:       x,
		CursorY:       y,
		MouseDown:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseJustDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseJustUp:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		KeyUp:         inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		KeyDown:       inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		KeyLeft:       repeating(ebiten.KeyArrowLeft),
		KeyRight:      repeating(ebiten.KeyArrowRight),
		KeyEnter:      inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		KeyToggle:     inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Shift:         ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

// repeating fires on press and then every few ticks while held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 20 && d%4 == 0)
}
