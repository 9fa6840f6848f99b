// Package script runs editing scripts against a single current image.
//
// A script is a stream of whitespace-separated tokens. Each command name is
// followed by a fixed number of arguments, listed in Commands:
//
//	open input.png
//	crop 10 10 64 64
//	median_filter 3
//	save output.png
//
// A Session holds the current image. open, blank and xpm2_open replace it;
// every other command needs one to be present. Run feeds the tokens of a
// script to a Session, printing a progress line per command, and stops at the
// first failing command.
package script
