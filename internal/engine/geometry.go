package engine

import "github.com/ironsheep/image-script/internal/raster"

// HMirror flips the image left to right in place.
func HMirror(img *raster.Image) {
	width := img.Width()
	pix := img.Pix()
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < width/2; x++ {
			l := img.Offset(x, y)
			r := img.Offset(width-1-x, y)
			pix[l], pix[r] = pix[r], pix[l]
		}
	}
}

// VMirror flips the image top to bottom in place.
func VMirror(img *raster.Image) {
	height := img.Height()
	pix := img.Pix()
	for y := 0; y < height/2; y++ {
		for x := 0; x < img.Width(); x++ {
			t := img.Offset(x, y)
			b := img.Offset(x, height-1-y)
			pix[t], pix[b] = pix[b], pix[t]
		}
	}
}

// RotateLeft returns img rotated 90 degrees counter-clockwise.
//
// The result is height x width; source pixel (x, y) lands at
// (y, width-1-x).
func RotateLeft(img *raster.Image) *raster.Image {
	return rotate(img, func(x, y int) (int, int) {
		return y, img.Width() - 1 - x
	})
}

// RotateRight returns img rotated 90 degrees clockwise.
//
// The result is height x width; source pixel (x, y) lands at
// (height-1-y, x).
func RotateRight(img *raster.Image) *raster.Image {
	return rotate(img, func(x, y int) (int, int) {
		return img.Height() - 1 - y, x
	})
}

// rotate copies every source pixel to the destination position given by
// dest in a new image with swapped dimensions.
func rotate(img *raster.Image, dest func(x, y int) (int, int)) *raster.Image {
	// Dimensions of an existing image are positive, so New cannot fail.
	out, _ := raster.New(img.Height(), img.Width(), raster.Black)
	src := img.Pix()
	dst := out.Pix()
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			dx, dy := dest(x, y)
			dst[out.Offset(dx, dy)] = src[img.Offset(x, y)]
		}
	}
	return out
}
