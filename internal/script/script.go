package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Run executes the script read from r against sess.
//
// Before each command it writes "Executing command '<name>' ..." to out; a
// nil out disables the progress lines. Run stops at the first failing
// command and returns the number of commands that completed along with the
// error, wrapped as "command N (name): ...".
func Run(r io.Reader, sess *Session, out io.Writer) (int, error) {
	if out == nil {
		out = io.Discard
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	executed := 0
	for sc.Scan() {
		name := sc.Text()
		fmt.Fprintf(out, "Executing command '%s' ...\n", name)

		fail := func(err error) (int, error) {
			return executed, fmt.Errorf("command %d (%s): %w", executed+1, name, err)
		}

		spec, ok := Lookup(name)
		if !ok {
			return fail(fmt.Errorf("%w: %q", ErrUnknownCommand, name))
		}

		args := make([]string, 0, spec.Arity())
		for len(args) < spec.Arity() && sc.Scan() {
			args = append(args, sc.Text())
		}
		if len(args) < spec.Arity() {
			if err := sc.Err(); err != nil {
				return fail(fmt.Errorf("failed to read script: %w", err))
			}
			return fail(fmt.Errorf("%w: %s wants %d, got %d (usage: %s)", ErrMissingArgument, name, spec.Arity(), len(args), spec.Usage))
		}

		if err := sess.Apply(name, args); err != nil {
			return fail(err)
		}
		executed++
	}
	if err := sc.Err(); err != nil {
		return executed, fmt.Errorf("failed to read script: %w", err)
	}
	return executed, nil
}

// RunString executes a script held in memory.
func RunString(script string, sess *Session, out io.Writer) (int, error) {
	return Run(strings.NewReader(script), sess, out)
}
