// Package raster provides the in-memory pixel representation used by the
// editor: an 8-bit RGB Color and an Image that owns a contiguous row-major
// buffer of them.
//
// Pixel (x, y) is stored at index y*Width()+x. Pixel and SetPixel check their
// coordinates and panic on a violation; Pix and Offset expose the buffer for
// loops that have already validated their ranges.
package raster
