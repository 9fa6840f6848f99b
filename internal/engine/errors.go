package engine

import "errors"

var (
	// ErrOutOfBounds reports a rectangle or offset that reaches outside an image.
	ErrOutOfBounds = errors.New("region outside image bounds")

	// ErrInvalidSize reports a non-positive output dimension.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidWindow reports a negative median filter window.
	ErrInvalidWindow = errors.New("invalid window size")
)
