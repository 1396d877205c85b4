package panel

import (
	"errors"
	"image/color"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned by a ColorPicker when the user dismisses it.
var ErrCanceled = zenity.ErrCanceled

// ColorPicker asks the user for a colour, starting from current. It may
// block; the panel calls it off the game loop.
type ColorPicker func(current color.Color) (color.Color, error)

// DialogPicker opens the native colour chooser.
func DialogPicker(current color.Color) (color.Color, error) {
	c, err := zenity.SelectColor(
		zenity.Title("Pick colour"),
		zenity.Color(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil, ErrCanceled
		}
		return nil, err
	}
	return c, nil
}
