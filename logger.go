package arcade

import (
	"log/slog"

	"github.com/gogpu/arcade/internal/logging"
)

// SetLogger configures the logger for arcade and all its sub-packages.
// By default, arcade produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by arcade:
//   - [slog.LevelDebug]: internal diagnostics (frame timing, device state)
//   - [slog.LevelInfo]: important lifecycle events (device selected,
//     window created)
//   - [slog.LevelWarn]: non-fatal issues (GPU fallback to software,
//     resource release errors)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	arcade.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	arcade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// logger returns the active logger for internal use.
func logger() *slog.Logger {
	return logging.Logger()
}
