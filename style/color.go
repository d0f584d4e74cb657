package style

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// Color converts a colour property, e.g. "red", "#ff8000" or
// "rgb(0, 128, 0)". The empty property and "none" yield a nil colour
// without an error.
func (p Property) Color() (color.Color, error) {
	if p.IsEmpty() || p == "none" {
		return nil, nil
	}
	c, err := csscolorparser.Parse(string(p))
	if err != nil {
		return nil, fmt.Errorf("not a colour: %q", string(p))
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
