package engine

import (
	"image"
	"math/rand"
	"testing"

	"github.com/ironsheep/image-script/internal/raster"
)

// newSolid creates a width x height image filled with c.
func newSolid(t *testing.T, width, height int, c raster.Color) *raster.Image {
	t.Helper()
	img, err := raster.New(width, height, c)
	if err != nil {
		t.Fatalf("raster.New(%d,%d) failed: %v", width, height, err)
	}
	return img
}

// newRandom creates a width x height image with pseudo-random pixels.
// The same seed always yields the same image.
func newRandom(t *testing.T, width, height int, seed int64) *raster.Image {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	img := newSolid(t, width, height, raster.Black)
	pix := img.Pix()
	for i := range pix {
		pix[i] = raster.Color{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}
	return img
}

// newFromPixels builds an image from row-major pixels.
func newFromPixels(t *testing.T, width, height int, pixels ...raster.Color) *raster.Image {
	t.Helper()
	if len(pixels) != width*height {
		t.Fatalf("got %d pixels for %dx%d image", len(pixels), width, height)
	}
	img := newSolid(t, width, height, raster.Black)
	copy(img.Pix(), pixels)
	return img
}

// fromStd converts a standard library image into a raster.Image.
func fromStd(t *testing.T, src image.Image) *raster.Image {
	t.Helper()
	b := src.Bounds()
	img := newSolid(t, b.Dx(), b.Dy(), raster.Black)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img
}

// assertEqual fails the test if the two images differ, reporting the first
// differing pixel.
func assertEqual(t *testing.T, got, want *raster.Image) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if g, w := got.Pixel(x, y), want.Pixel(x, y); g != w {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, g, w)
			}
		}
	}
}

// testSizes covers odd and even dimensions and degenerate strips.
var testSizes = []struct{ w, h int }{
	{1, 1},
	{1, 5},
	{5, 1},
	{2, 2},
	{3, 4},
	{7, 5},
	{16, 9},
}
