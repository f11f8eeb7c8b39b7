// Package logger builds the zerolog instance shared by the lab
// binaries.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger at the given level, falling back to
// info when the level string does not parse. Logs go to stderr so that
// the interactive sessions keep stdout for their own output.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
