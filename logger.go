package huffmantree

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var gLogger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(zerolog.Nop())
}

// SetLogger replaces the logger used for debug events by this package.  The
// default logger discards everything.
func SetLogger(logger zerolog.Logger) {
	logger = logger.With().Str("package", "huffmantree").Logger()
	gLogger.Store(&logger)
}

func logger() *zerolog.Logger {
	return gLogger.Load()
}
