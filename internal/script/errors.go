package script

import "errors"

var (
	// ErrUnknownCommand reports a command name not listed in Commands.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNoImage reports a command that needs a current image before one was
	// opened or created.
	ErrNoImage = errors.New("no image loaded")

	// ErrMissingArgument reports a command given fewer arguments than it takes.
	ErrMissingArgument = errors.New("missing argument")

	// ErrExtraArgument reports a command given more arguments than it takes.
	ErrExtraArgument = errors.New("too many arguments")

	// ErrInvalidArgument reports an argument that does not parse as its type.
	ErrInvalidArgument = errors.New("invalid argument")
)
