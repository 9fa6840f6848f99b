// Package codec moves raster images between files and memory.
//
// Standard formats (PNG, JPEG, GIF, TIFF, BMP) are decoded and encoded with
// disintegration/imaging; the file extension selects the format. Files ending
// in .xpm or .xpm2 use the XPM2 text format implemented here.
//
// # Alpha
//
// Decoded images are converted to non-premultiplied 8-bit RGB. Alpha is
// dropped without compositing, so a transparent pixel keeps the color stored
// under it.
//
// # Caching
//
// Decoded files are kept in an ImageCache keyed by path. Each Decode still
// returns a new raster.Image, so edits never reach the cached data. Encode
// evicts the path it writes.
package codec
