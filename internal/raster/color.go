package raster

import "fmt"

// Color is an 8-bit RGB value.
//
// The fields are the channel accessors: read them to inspect a channel,
// assign them to change one. Two colors are equal when all three channels
// are equal, so Color values can be compared with ==.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB builds a Color from integer channel values.
//
// Values are stored as 8-bit channels without clamping: anything outside
// 0-255 wraps modulo 256, so RGB(256, -1, 300) is (0, 255, 44).
func RGB(r, g, b int) Color {
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Matches reports whether c equals the color given by integer channels.
//
// The comparison is done on integers, so a channel outside 0-255 never
// matches any stored color.
func (c Color) Matches(r, g, b int) bool {
	return int(c.R) == r && int(c.G) == g && int(c.B) == b
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}
