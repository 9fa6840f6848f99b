// Package engine implements the pixel operations of the editor.
//
// Every operation works on a *raster.Image supplied by the caller and keeps no
// state of its own. Operations that keep the image size (Invert, ToGrayScale,
// Replace, Fill, HMirror, VMirror, Add) modify their argument in place.
// Operations that produce a different buffer (Crop, RotateLeft, RotateRight,
// MedianFilter) return a newly allocated image and never touch the source; the
// caller replaces its reference with the result.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. Rectangles
// are given as an origin (x, y) plus a width and height, covering
// [x, x+w) x [y, y+h).
//
// # Preconditions
//
// Parameters are not clamped or repaired. When a rectangle, offset or window
// would address pixels outside an image the operation returns an error
// wrapping ErrOutOfBounds, ErrInvalidSize or ErrInvalidWindow and leaves the
// image unchanged. Channel values are integers stored as 8-bit channels; see
// raster.RGB for the wrap-around rule.
package engine
