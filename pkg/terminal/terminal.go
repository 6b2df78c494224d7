// Package terminal probes the capabilities of output streams.
package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the width of a stream cannot be measured.
const DefaultWidth = 80

// fder is implemented by streams backed by a file descriptor, such as
// *os.File.
type fder interface {
	Fd() uintptr
}

// Width returns the column count of the terminal behind w. Streams that are
// not terminals, and terminals narrower than half of DefaultWidth, report
// DefaultWidth.
func Width(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < DefaultWidth/2 {
		return DefaultWidth
	}
	return width
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SupportsColor reports whether w is a terminal that can show colors. It
// honors NO_COLOR and TERM=dumb.
func SupportsColor(w io.Writer) bool {
	if !IsTerminal(w) {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	out := termenv.NewOutput(w)
	if out.EnvNoColor() {
		return false
	}
	return out.EnvColorProfile() != termenv.Ascii
}
