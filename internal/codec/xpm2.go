package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-script/internal/raster"
)

// ErrMalformedXPM2 is returned when XPM2 input does not follow the format.
var ErrMalformedXPM2 = errors.New("malformed XPM2")

const xpm2Magic = "! XPM2"

// xpm2MaxCharsPerPixel bounds the code width accepted on read. Five
// characters already name more colors than an image can hold pixels.
const xpm2MaxCharsPerPixel = 8

// xpm2Alphabet holds the characters used for color codes: printable ASCII
// without space, double quote and backslash.
var xpm2Alphabet = func() []byte {
	var b []byte
	for c := byte('!'); c <= '~'; c++ {
		if c == '"' || c == '\\' {
			continue
		}
		b = append(b, c)
	}
	return b
}()

// ReadXPM2 decodes an XPM2 image.
//
// The expected layout is:
//
//	! XPM2
//	<width> <height> <colors> <chars-per-pixel>
//	<code> c #rrggbb        (one line per color)
//	<row of width*chars-per-pixel code characters>   (one line per row)
//
// Only "c" color entries in #rrggbb or #rgb form are accepted.
func ReadXPM2(r io.Reader) (*raster.Image, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: unexpected end of input after line %d", ErrMalformedXPM2, line)
		}
		line++
		return strings.TrimRight(sc.Text(), "\r"), nil
	}
	malformed := func(format string, args ...any) error {
		return fmt.Errorf("%w: line %d: %s", ErrMalformedXPM2, line, fmt.Sprintf(format, args...))
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(magic) != xpm2Magic {
		return nil, malformed("missing %q header", xpm2Magic)
	}

	header, err := next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(header)
	if len(fields) != 4 {
		return nil, malformed("want 4 header values, got %d", len(fields))
	}
	var values [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v <= 0 {
			return nil, malformed("header value %q is not a positive integer", f)
		}
		values[i] = v
	}
	width, height, ncolors, cpp := values[0], values[1], values[2], values[3]
	if width > raster.MaxPixels/height {
		return nil, malformed("%dx%d image exceeds %d pixels", width, height, raster.MaxPixels)
	}
	if cpp > xpm2MaxCharsPerPixel {
		return nil, malformed("%d characters per pixel, at most %d supported", cpp, xpm2MaxCharsPerPixel)
	}

	palette := make(map[string]raster.Color, min(ncolors, width*height))
	for i := 0; i < ncolors; i++ {
		entry, err := next()
		if err != nil {
			return nil, err
		}
		if len(entry) < cpp {
			return nil, malformed("color entry shorter than %d code characters", cpp)
		}
		code := entry[:cpp]
		spec := strings.Fields(entry[cpp:])
		if len(spec) != 2 || spec[0] != "c" {
			return nil, malformed("want %q, got %q", "<code> c #rrggbb", entry)
		}
		col, err := colorful.Hex(spec[1])
		if err != nil {
			return nil, malformed("bad color %q: %v", spec[1], err)
		}
		if _, dup := palette[code]; dup {
			return nil, malformed("duplicate color code %q", code)
		}
		r, g, b := col.RGB255()
		palette[code] = raster.Color{R: r, G: g, B: b}
	}

	img, err := raster.New(width, height, raster.Black)
	if err != nil {
		return nil, err
	}
	pix := img.Pix()
	for y := 0; y < height; y++ {
		row, err := next()
		if err != nil {
			return nil, err
		}
		if len(row) != width*cpp {
			return nil, malformed("row has %d characters, want %d", len(row), width*cpp)
		}
		for x := 0; x < width; x++ {
			code := row[x*cpp : (x+1)*cpp]
			c, ok := palette[code]
			if !ok {
				return nil, malformed("unknown color code %q", code)
			}
			pix[img.Offset(x, y)] = c
		}
	}
	return img, nil
}

// WriteXPM2 encodes img as XPM2.
//
// Codes are assigned in order of first appearance, scanning rows top to
// bottom, using the fewest characters per pixel that can name every color.
func WriteXPM2(w io.Writer, img *raster.Image) error {
	var order []raster.Color
	seen := make(map[raster.Color]int)
	for _, c := range img.Pix() {
		if _, ok := seen[c]; !ok {
			seen[c] = len(order)
			order = append(order, c)
		}
	}

	cpp := 1
	for capacity := len(xpm2Alphabet); capacity < len(order); capacity *= len(xpm2Alphabet) {
		cpp++
	}
	codes := make([]string, len(order))
	for i := range order {
		codes[i] = xpm2Code(i, cpp)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d %d %d\n", xpm2Magic, img.Width(), img.Height(), len(order), cpp)
	for i, c := range order {
		col, _ := colorful.MakeColor(c)
		fmt.Fprintf(bw, "%s c %s\n", codes[i], col.Hex())
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			bw.WriteString(codes[seen[img.Pix()[img.Offset(x, y)]]])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// xpm2Code spells index n in base len(xpm2Alphabet) with exactly width digits.
func xpm2Code(n, width int) string {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = xpm2Alphabet[n%len(xpm2Alphabet)]
		n /= len(xpm2Alphabet)
	}
	return string(b)
}
