package engine

import (
	"fmt"

	"github.com/ironsheep/image-script/internal/raster"
)

// inside reports whether the non-empty rectangle [x,x+w) x [y,y+h) lies
// entirely within img. It never adds coordinates, so huge arguments cannot
// wrap around.
func inside(img *raster.Image, x, y, w, h int) bool {
	return x >= 0 && y >= 0 && w <= img.Width()-x && h <= img.Height()-y
}

func boundsError(img *raster.Image, x, y, w, h int) error {
	return fmt.Errorf("%w: rectangle (%d,%d) %dx%d, image %dx%d",
		ErrOutOfBounds, x, y, w, h, img.Width(), img.Height())
}

// Fill paints the rectangle [x,x+w) x [y,y+h) with raster.RGB(r, g, b).
//
// A rectangle with w <= 0 or h <= 0 is empty and leaves the image as is.
// A non-empty rectangle must lie inside the image, otherwise Fill returns
// ErrOutOfBounds without painting anything.
func Fill(img *raster.Image, x, y, w, h, r, g, b int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if !inside(img, x, y, w, h) {
		return boundsError(img, x, y, w, h)
	}

	c := raster.RGB(r, g, b)
	pix := img.Pix()
	for j := y; j < y+h; j++ {
		row := pix[img.Offset(x, j) : img.Offset(x+w, j)]
		for i := range row {
			row[i] = c
		}
	}
	return nil
}

// Add composites src onto dst with its top-left corner at (x, y).
//
// Pixels of src equal to the neutral color raster.RGB(r, g, b) are treated as
// transparent and skipped; all others overwrite the destination pixel. The
// test is exact equality, there is no tolerance or blending. The whole of src,
// once offset, must fit inside dst; otherwise Add returns ErrOutOfBounds and
// dst is not modified.
func Add(dst, src *raster.Image, r, g, b, x, y int) error {
	if !inside(dst, x, y, src.Width(), src.Height()) {
		return boundsError(dst, x, y, src.Width(), src.Height())
	}

	neutral := raster.RGB(r, g, b)
	dpix := dst.Pix()
	spix := src.Pix()
	for h := 0; h < src.Height(); h++ {
		for w := 0; w < src.Width(); w++ {
			c := spix[src.Offset(w, h)]
			if c == neutral {
				continue
			}
			dpix[dst.Offset(w+x, h+y)] = c
		}
	}
	return nil
}

// Crop returns a new w x h image holding the sub-rectangle of img whose
// top-left corner is (x, y). img itself is not modified.
//
// Returns ErrInvalidSize if w or h is not positive and ErrOutOfBounds if the
// rectangle does not lie inside img.
func Crop(img *raster.Image, x, y, w, h int) (*raster.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrInvalidSize, w, h)
	}
	if !inside(img, x, y, w, h) {
		return nil, boundsError(img, x, y, w, h)
	}

	out, err := raster.New(w, h, raster.Black)
	if err != nil {
		return nil, err
	}
	src := img.Pix()
	dst := out.Pix()
	for j := 0; j < h; j++ {
		copy(dst[out.Offset(0, j):out.Offset(w, j)], src[img.Offset(x, y+j):img.Offset(x+w, y+j)])
	}
	return out, nil
}
