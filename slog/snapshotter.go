package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/chatdump"
)

// Ensure LoggingSnapshotter implements chatdump.Snapshotter.
var _ chatdump.Snapshotter = (*LoggingSnapshotter)(nil)

// LoggingSnapshotter wraps a Snapshotter with debug logging.
type LoggingSnapshotter struct {
	next   chatdump.Snapshotter
	logger *slog.Logger
}

// NewLoggingSnapshotter creates a new LoggingSnapshotter.
func NewLoggingSnapshotter(next chatdump.Snapshotter, logger *slog.Logger) *LoggingSnapshotter {
	return &LoggingSnapshotter{next: next, logger: logger}
}

// Snapshot delegates to the wrapped snapshotter and logs the operation.
func (s *LoggingSnapshotter) Snapshot(ctx context.Context, target string) (snap *chatdump.Snapshot, err error) {
	defer func(begin time.Time) {
		var bytes int
		var title string
		if snap != nil {
			bytes = len(snap.HTML)
			title = snap.Title
		}
		s.logger.Info("page snapshot",
			"target", target,
			"title", title,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Snapshot(ctx, target)
}
