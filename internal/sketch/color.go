package sketch

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses an opaque colour token in #rgb or #rrggbb form.
func ParseColor(tok string) (colorful.Color, error) {
	tok = strings.TrimSpace(tok)
	if len(tok) != 4 && len(tok) != 7 {
		return colorful.Color{}, fmt.Errorf("colour %q: %w", tok, ErrInvalidValue)
	}
	c, err := colorful.Hex(tok)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("colour %q: %w", tok, ErrInvalidValue)
	}
	return c, nil
}

// FormatColor renders c as a #rrggbb token.
func FormatColor(c color.Color) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Clamped().Hex()
}

// Palette holds the four parsed colour slots.
type Palette [4]color.RGBA

// Palette parses the colour tokens. Snapshots that passed Apply or Validate
// always parse; an unparsable slot falls back to opaque black.
func (p Parameters) Palette() Palette {
	var pal Palette
	for i, tok := range p.colors() {
		c, err := ParseColor(tok)
		if err != nil {
			pal[i] = color.RGBA{A: 0xff}
			continue
		}
		r, g, b := c.RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return pal
}
