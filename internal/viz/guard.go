package viz

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// ErrNoTerminal indicates an interactive display was requested without a
// terminal on standard output.
var ErrNoTerminal = errors.New("viz: standard output is not a terminal")

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RequireTerminal returns ErrNoTerminal unless f is a terminal.
func RequireTerminal(f *os.File) error {
	if !IsTerminal(f) {
		return ErrNoTerminal
	}
	return nil
}

// GuardDisplay reports whether f can show a figure. When it cannot, it
// writes the "no terminal detected" guidance and hint to out.
func GuardDisplay(f *os.File, out io.Writer, hint string) bool {
	err := RequireTerminal(f)
	if err == nil {
		return true
	}
	log.WithError(err).Debug("display skipped")
	fmt.Fprintln(out, "no terminal detected; nothing to display.")
	fmt.Fprintln(out, hint)
	return false
}
