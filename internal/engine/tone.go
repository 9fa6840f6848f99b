package engine

import "github.com/ironsheep/image-script/internal/raster"

// Invert replaces every channel c with 255 - c.
func Invert(img *raster.Image) {
	pix := img.Pix()
	for i, c := range pix {
		pix[i] = raster.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	}
}

// ToGrayScale sets every pixel to (v, v, v) where v = (r+g+b)/3 with integer
// division.
func ToGrayScale(img *raster.Image) {
	pix := img.Pix()
	for i, c := range pix {
		v := uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
		pix[i] = raster.Color{R: v, G: v, B: v}
	}
}

// Replace changes every pixel exactly equal to (r1, g1, b1) into
// raster.RGB(r2, g2, b2).
//
// Matching is on integer values, so a source channel outside 0-255 matches
// no pixel at all.
func Replace(img *raster.Image, r1, g1, b1, r2, g2, b2 int) {
	to := raster.RGB(r2, g2, b2)
	pix := img.Pix()
	for i, c := range pix {
		if c.Matches(r1, g1, b1) {
			pix[i] = to
		}
	}
}
