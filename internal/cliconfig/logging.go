package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger creates a console zerolog logger for the daemon.
func Logger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
