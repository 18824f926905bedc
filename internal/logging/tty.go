package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and wrappers around one.
type fder interface {
	Fd() uintptr
}

func isTerminal(v any) bool {
	f, ok := v.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool { return isTerminal(w) }

// IsInteractive reports whether r and w are both terminals. The editor and
// the field picker take over the screen and need both.
func IsInteractive(r io.Reader, w io.Writer) bool {
	return isTerminal(r) && isTerminal(w)
}

// SupportsColor reports whether colored output should be written to w.
// NO_COLOR (https://no-color.org) and TERM=dumb turn color off.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(tty bool) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return tty && os.Getenv("TERM") != "dumb"
}
