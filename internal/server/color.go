package server

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-script/internal/raster"
)

// HSLColor represents a color in HSL space, rounded to whole units.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a pixel color in several representations.
type ColorResult struct {
	X   int          `json:"x"`
	Y   int          `json:"y"`
	Hex string       `json:"hex"` // "#RRGGBB"
	RGB raster.Color `json:"rgb"`
	HSL HSLColor     `json:"hsl"`
}

// sampleColor reads the color at (x, y) of img.
func sampleColor(img *raster.Image, x, y int) (*ColorResult, error) {
	if !img.In(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image", x, y, img.Width(), img.Height())
	}

	c := img.Pixel(x, y)
	col, _ := colorful.MakeColor(c)
	h, s, l := col.Hsl()

	return &ColorResult{
		X:   x,
		Y:   y,
		Hex: strings.ToUpper(col.Hex()),
		RGB: c,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}
