package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned when an image dimension is not positive or the
// image would hold more than MaxPixels pixels.
var ErrInvalidSize = errors.New("invalid image size")

// MaxPixels is the largest width*height New accepts (768 MiB of pixel data).
const MaxPixels = 1 << 28

// Image is a width x height buffer of Colors in row-major order.
//
// Pixel (x, y) lives at index y*width + x of the buffer. The dimensions and
// the buffer length are fixed at construction. Image implements draw.Image,
// so it can be handed directly to encoders and to image libraries.
type Image struct {
	width  int
	height int
	pix    []Color
}

// New allocates a width x height image with every pixel set to fill.
//
// Returns ErrInvalidSize (wrapped) if either dimension is not positive or
// the pixel count exceeds MaxPixels.
func New(width, height int, fill Color) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidSize, width, height, MaxPixels)
	}
	pix := make([]Color, width*height)
	if fill != (Color{}) {
		for i := range pix {
			pix[i] = fill
		}
	}
	return &Image{width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// In reports whether (x, y) addresses a pixel of the image.
func (m *Image) In(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Offset returns the index of pixel (x, y) in Pix. It does not check bounds.
func (m *Image) Offset(x, y int) int {
	return y*m.width + x
}

// Pix returns the underlying row-major pixel buffer.
//
// Writes through the returned slice modify the image. It is the unchecked
// access path for loops whose coordinates are already known to be valid;
// callers must not hold on to it across operations that replace the image.
func (m *Image) Pix() []Color {
	return m.pix
}

// Pixel returns the color at (x, y). It panics if (x, y) is outside the image.
func (m *Image) Pixel(x, y int) Color {
	m.check(x, y)
	return m.pix[y*m.width+x]
}

// SetPixel sets the color at (x, y). It panics if (x, y) is outside the image.
func (m *Image) SetPixel(x, y int, c Color) {
	m.check(x, y)
	m.pix[y*m.width+x] = c
}

func (m *Image) check(x, y int) {
	if !m.In(x, y) {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d image", x, y, m.width, m.height))
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]Color, len(m.pix))
	copy(pix, m.pix)
	return &Image{width: m.width, height: m.height, pix: pix}
}

// Equal reports whether both images have the same dimensions and pixels.
// A nil other is never equal.
func (m *Image) Equal(other *Image) bool {
	if other == nil {
		return false
	}
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, c := range m.pix {
		if other.pix[i] != c {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image. The origin is always (0, 0).
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At implements image.Image. Points outside the image read as Black,
// matching the convention of the standard library image types.
func (m *Image) At(x, y int) color.Color {
	if !m.In(x, y) {
		return Black
	}
	return m.pix[y*m.width+x]
}

// Opaque reports whether the image is fully opaque, which it always is.
// Encoders use it to skip scanning for alpha.
func (m *Image) Opaque() bool { return true }

// Set implements draw.Image. Alpha is discarded; points outside the image
// are ignored.
func (m *Image) Set(x, y int, c color.Color) {
	if !m.In(x, y) {
		return
	}
	m.pix[y*m.width+x] = Model.Convert(c).(Color)
}

// Model converts any color to a Color by taking its non-premultiplied
// 8-bit channels and dropping alpha.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if rc, ok := c.(Color); ok {
		return rc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
})
