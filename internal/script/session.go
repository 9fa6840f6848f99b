package script

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/image-script/internal/codec"
	"github.com/ironsheep/image-script/internal/engine"
	"github.com/ironsheep/image-script/internal/raster"
)

// Session holds the current image of a script run.
//
// There is at most one current image. Commands that produce a new buffer
// replace it; the previous buffer is dropped. A Session is not safe for
// concurrent use.
type Session struct {
	codec *codec.Codec
	image *raster.Image
}

// NewSession creates a session with no current image that reads and writes
// files through c.
func NewSession(c *codec.Codec) *Session {
	return &Session{codec: c}
}

// Current returns the current image, or nil before open or blank.
func (s *Session) Current() *raster.Image {
	return s.image
}

// Codec returns the codec used for file commands.
func (s *Session) Codec() *codec.Codec {
	return s.codec
}

// Reset drops the current image.
func (s *Session) Reset() {
	s.image = nil
}

// Apply executes one command with its argument tokens.
//
// The argument count must match the command's arity exactly. Integer
// arguments are parsed before anything runs, so a failing command leaves the
// current image as it was.
func (s *Session) Apply(name string, args []string) error {
	spec, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) < spec.Arity() {
		return fmt.Errorf("%w: %s wants %d, got %d (usage: %s)", ErrMissingArgument, name, spec.Arity(), len(args), spec.Usage)
	}
	if len(args) > spec.Arity() {
		return fmt.Errorf("%w: %s wants %d, got %d (usage: %s)", ErrExtraArgument, name, spec.Arity(), len(args), spec.Usage)
	}
	if spec.NeedsImage && s.image == nil {
		return ErrNoImage
	}

	n := make([]int, len(args))
	for i, a := range spec.Args {
		if a.Type != "int" {
			continue
		}
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("%w: %s %q is not an integer", ErrInvalidArgument, a.Name, args[i])
		}
		n[i] = v
	}

	switch name {
	case "open":
		img, err := s.codec.Decode(args[0])
		if err != nil {
			return err
		}
		s.image = img

	case "blank":
		img, err := raster.New(n[0], n[1], raster.RGB(n[2], n[3], n[4]))
		if err != nil {
			return err
		}
		s.image = img

	case "save":
		return s.codec.Encode(args[0], s.image)

	case "xpm2_open":
		img, err := s.codec.DecodeXPM2(args[0])
		if err != nil {
			return err
		}
		s.image = img

	case "xpm2_save":
		return s.codec.EncodeXPM2(args[0], s.image)

	case "invert":
		engine.Invert(s.image)

	case "to_gray_scale":
		engine.ToGrayScale(s.image)

	case "replace":
		engine.Replace(s.image, n[0], n[1], n[2], n[3], n[4], n[5])

	case "fill":
		return engine.Fill(s.image, n[0], n[1], n[2], n[3], n[4], n[5], n[6])

	case "h_mirror":
		engine.HMirror(s.image)

	case "v_mirror":
		engine.VMirror(s.image)

	case "add":
		src, err := s.codec.Decode(args[0])
		if err != nil {
			return err
		}
		return engine.Add(s.image, src, n[1], n[2], n[3], n[4], n[5])

	case "crop":
		img, err := engine.Crop(s.image, n[0], n[1], n[2], n[3])
		if err != nil {
			return err
		}
		s.image = img

	case "rotate_left":
		s.image = engine.RotateLeft(s.image)

	case "rotate_right":
		s.image = engine.RotateRight(s.image)

	case "median_filter":
		img, err := engine.MedianFilter(s.image, n[0])
		if err != nil {
			return err
		}
		s.image = img

	default:
		// Listed in Commands but not handled above.
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return nil
}
