// Package xlog is the package-level structured logger the blueprint
// framework and simulation driver emit through: component-added events,
// extinctions, topology advisories, structural foodweb resamples. Callers
// who want silence can assign zerolog.Nop() to Logger; nothing in this
// module panics or calls os.Exit on a user-facing error, logging is strictly
// observational.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger every ecodyn package writes through.
// Swap it (e.g. Logger = zerolog.Nop()) before calling into the library to
// silence it, or Logger = zerolog.New(...) to redirect it.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
