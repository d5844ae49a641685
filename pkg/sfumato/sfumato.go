// Package sfumato describes view transitions as pure, immutable data.
//
// A Transition declares how an element enters and exits a presentation:
// a move across an edge, a fade, a scale, a rotation, or a composite of
// those. Asymmetric pairs give the two directions independent
// transitions, and the Registry holds reusable named compositions. The
// package renders nothing: the host rendering layer owns each element's
// visibility state and calls Resolve once per frame to obtain the
// opacity, displacement, scale, and rotation to apply.
//
// The runner subpackage provides a reference animation driver over this
// contract, and the config subpackage loads named transitions from TOML
// catalog files.
package sfumato

import (
	"log/slog"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato/internal"
)

// Options configures logging for the library and its consumers.
type Options struct {
	LogPath  string // Full path for the log file; empty logs to stdout only
	LogLevel string // Minimum log level ("debug", "info", "warn", "error")
}

// Init configures logging. The descriptor types work without it; call
// it when the application wants the library's logger writing to a file
// or at a non-default level.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// Close releases the log file, if one was opened. Call before program
// exit.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
