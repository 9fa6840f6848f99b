package codec

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-script/internal/raster"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultJPEGQuality is used when Options.JPEGQuality is zero.
const DefaultJPEGQuality = 95

// Options configures decoding and encoding.
type Options struct {
	// JPEGQuality is the quality (1-100) used when saving .jpg/.jpeg files.
	JPEGQuality int

	// AutoOrient applies the EXIF orientation tag of JPEG files on decode.
	AutoOrient bool
}

// Codec reads and writes raster images.
//
// The format is chosen from the file extension: .xpm and .xpm2 use the XPM2
// text format, everything else goes through disintegration/imaging.
type Codec struct {
	cache *ImageCache
	opts  Options
}

// New creates a codec with its own image cache.
func New(opts Options) *Codec {
	if opts.JPEGQuality == 0 {
		opts.JPEGQuality = DefaultJPEGQuality
	}
	return &Codec{
		cache: NewImageCache(imaging.AutoOrientation(opts.AutoOrient)),
		opts:  opts,
	}
}

// Cache returns the codec's decoded image cache.
func (c *Codec) Cache() *ImageCache {
	return c.cache
}

// Decode reads the image file at path into a new raster image.
func (c *Codec) Decode(path string) (*raster.Image, error) {
	if isXPM2(path) {
		return c.DecodeXPM2(path)
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	img, err := c.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Encode writes img to path in the format named by the file extension.
func (c *Codec) Encode(path string, img *raster.Image) error {
	if isXPM2(path) {
		return c.EncodeXPM2(path, img)
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	c.cache.Evict(path)
	if err := imaging.Save(img, path, imaging.JPEGQuality(c.opts.JPEGQuality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// DecodeXPM2 reads an XPM2 file regardless of its extension.
func (c *Codec) DecodeXPM2(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := ReadXPM2(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// EncodeXPM2 writes img as an XPM2 file regardless of the extension of path.
func (c *Codec) EncodeXPM2(path string, img *raster.Image) (err error) {
	c.cache.Evict(path)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image: %w", cerr)
		}
	}()

	if err := WriteXPM2(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// FromImage copies any image into a new raster image.
//
// Colors are taken as non-premultiplied 8-bit channels; alpha is dropped.
func FromImage(src image.Image) (*raster.Image, error) {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()

	img, err := raster.New(b.Dx(), b.Dy(), raster.Black)
	if err != nil {
		return nil, err
	}
	pix := img.Pix()
	for y := 0; y < b.Dy(); y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			pix[img.Offset(x, y)] = raster.Color{R: row[x*4], G: row[x*4+1], B: row[x*4+2]}
		}
	}
	return img, nil
}

func isXPM2(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xpm", ".xpm2":
		return true
	}
	return false
}
