package engine

import (
	"fmt"
	"slices"

	"github.com/ironsheep/image-script/internal/raster"
)

// MedianFilter returns a new image where each pixel is the per-channel median
// of its neighborhood in img.
//
// The neighborhood of (x, y) is the square [x-k, x+k] x [y-k, y+k] with
// k = windowSize/2, clipped to the image. Each channel is sorted on its own.
// With an odd number of neighbors the middle value is used; with an even
// number, the truncated average of the two middle values. Only values from
// img are read, so earlier outputs never feed later ones.
//
// A windowSize of 0 or 1 gives a copy of img. A negative windowSize returns
// ErrInvalidWindow.
func MedianFilter(img *raster.Image, windowSize int) (*raster.Image, error) {
	if windowSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, windowSize)
	}

	width, height := img.Width(), img.Height()
	out, err := raster.New(width, height, raster.Black)
	if err != nil {
		return nil, err
	}

	// A window wider than the image clips to the whole image.
	half := min(windowSize/2, max(width, height))
	n := min(2*half+1, width) * min(2*half+1, height)
	reds := make([]uint8, 0, n)
	greens := make([]uint8, 0, n)
	blues := make([]uint8, 0, n)

	src := img.Pix()
	dst := out.Pix()
	for y := 0; y < height; y++ {
		ymin, ymax := max(0, y-half), min(height-1, y+half)
		for x := 0; x < width; x++ {
			xmin, xmax := max(0, x-half), min(width-1, x+half)

			reds, greens, blues = reds[:0], greens[:0], blues[:0]
			for ny := ymin; ny <= ymax; ny++ {
				for _, c := range src[img.Offset(xmin, ny) : img.Offset(xmax, ny)+1] {
					reds = append(reds, c.R)
					greens = append(greens, c.G)
					blues = append(blues, c.B)
				}
			}

			dst[out.Offset(x, y)] = raster.Color{
				R: median(reds),
				G: median(greens),
				B: median(blues),
			}
		}
	}
	return out, nil
}

// median sorts values in place and returns their median.
// values must not be empty.
func median(values []uint8) uint8 {
	slices.Sort(values)
	n := len(values)
	if n%2 != 0 {
		return values[n/2]
	}
	return uint8((int(values[n/2-1]) + int(values[n/2])) / 2)
}
