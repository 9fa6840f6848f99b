package server

import (
	"image"
	"image/color"
	"strconv"
)

var (
	labelForeground = color.NRGBA{255, 255, 255, 255}
	labelBackground = color.NRGBA{0, 0, 0, 255}
)

// glyphs is a 3x5 pixel font for grid labels.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

const (
	glyphAdvance = 4
	labelHeight  = 7
)

// gridLines returns the canvas positions of the lines drawn every spacing
// image pixels along an image dimension of size pixels, rendered at scale
// onto a canvas extent pixels long. Image lines that land on the same
// canvas pixel are drawn once, at the first of them.
func gridLines(spacing int, scale float64, size, extent int) (canvas, source []int) {
	for k := spacing; k < size; k += spacing {
		p := int(float64(k) * scale)
		if p >= extent {
			break
		}
		if n := len(canvas); n > 0 && canvas[n-1] == p {
			continue
		}
		canvas = append(canvas, p)
		source = append(source, k)
	}
	return canvas, source
}

// drawGrid draws lines on dst every spacing pixels of a size image. dst is a
// rendering of that image at scale. With labels set, each intersection is
// tagged with its "x,y" image coordinates.
func drawGrid(dst *image.NRGBA, size image.Point, spacing int, scale float64, line color.NRGBA, labels bool) {
	b := dst.Bounds()
	xs, srcX := gridLines(spacing, scale, size.X, b.Dx())
	ys, srcY := gridLines(spacing, scale, size.Y, b.Dy())

	for _, x := range xs {
		for y := 0; y < b.Dy(); y++ {
			dst.SetNRGBA(x, y, line)
		}
	}
	for _, y := range ys {
		for x := 0; x < b.Dx(); x++ {
			dst.SetNRGBA(x, y, line)
		}
	}

	if !labels {
		return
	}
	for j, y := range ys {
		for i, x := range xs {
			drawLabel(dst, x+2, y+2, strconv.Itoa(srcX[i])+","+strconv.Itoa(srcY[j]))
		}
	}
}

// drawLabel writes text with its top-left corner at (x, y) on a solid
// background. Parts falling outside dst are clipped.
func drawLabel(dst *image.NRGBA, x, y int, text string) {
	r := image.Rect(x-1, y-1, x+len(text)*glyphAdvance, y+labelHeight-1).Intersect(dst.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			dst.SetNRGBA(px, py, labelBackground)
		}
	}

	for n, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		cx := x + n*glyphAdvance
		for row, bits := range glyph {
			for col, bit := range bits {
				if bit == '1' && image.Pt(cx+col, y+row).In(dst.Bounds()) {
					dst.SetNRGBA(cx+col, y+row, labelForeground)
				}
			}
		}
	}
}
