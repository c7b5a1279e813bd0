package pge

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// loggerPtr stores the active logger. Accessed atomically so SetLogger can be
// called while a host loop is running on another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newDefaultLogger())
}

// newDefaultLogger writes warnings and errors to stderr.
func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})).With("component", "pge")
}

// SetLogger configures the logger used by the engine and its hosts.
// Pass nil to restore the default stderr logger.
//
// Log levels used by pge:
//   - [slog.LevelDebug]: engine lifecycle, per-second frame stats, injected input
//   - [slog.LevelWarn]: non-fatal failures such as Game.OnDestroy errors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The ebitenhost package shares it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
