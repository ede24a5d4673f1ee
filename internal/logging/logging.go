// Package logging configures the zerolog logger used for game diagnostics.
// Diagnostics go to stderr so they never mix with game text on stdout.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup returns a logger writing to w at the given level. Unknown level
// strings fall back to warn. When w is a terminal the output is
// human-readable console format; otherwise plain JSON lines.
func Setup(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
