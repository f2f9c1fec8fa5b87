package ui

import (
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	colorOnce sync.Once
	colorOK   bool
)

// ColorCapable reports whether stderr is an interactive terminal that
// can take colored output. Returns false when output is piped,
// redirected, or TERM is "dumb".
func ColorCapable() bool {
	colorOnce.Do(func() {
		if os.Getenv("TERM") == "dumb" || os.Getenv("NO_COLOR") != "" {
			return
		}
		colorOK = term.IsTerminal(int(os.Stderr.Fd()))
	})
	return colorOK
}
