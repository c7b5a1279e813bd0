package pge

import (
	"context"
	"log/slog"
)

// frameStats summarizes one second of frames for debug logging.
type frameStats struct {
	fps        int
	injected   int
	hostEvents int
}

// logFrameStats logs and resets the stats gathered since the last call.
func (e *Engine) logFrameStats() {
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("frame stats",
			"title", e.cfg.Title,
			"fps", e.stats.fps,
			"injected", e.stats.injected,
			"host_events", e.stats.hostEvents,
		)
	}
	e.stats = frameStats{}
}
