// File: internal/diag/logger.go
//
// Leveled diagnostics for the pool internals. Silent at warn level unless
// BYTEPOOL_DEBUG=1 is set; BYTEPOOL_QUIET=1 disables output entirely.

package diag

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	level := zerolog.WarnLevel
	switch {
	case os.Getenv("BYTEPOOL_DEBUG") == "1":
		level = zerolog.DebugLevel
	case os.Getenv("BYTEPOOL_QUIET") == "1":
		level = zerolog.Disabled
	}
	logger = zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Str("component", "bytepool").
		Logger()
}

// Logger returns the package-wide diagnostics logger.
func Logger() *zerolog.Logger {
	return &logger
}

// SetLogger replaces the diagnostics logger, e.g. to route pool internals
// into an application's own zerolog tree.
func SetLogger(l zerolog.Logger) {
	logger = l
}
