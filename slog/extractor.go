// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/chatdump"
)

// Ensure LoggingExtractor implements chatdump.Extractor.
var _ chatdump.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   chatdump.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next chatdump.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractMessages delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractMessages(snapshotHTML string) (msgs []*chatdump.Message, err error) {
	defer func(begin time.Time) {
		e.logger.Info("message extraction",
			"bytes", len(snapshotHTML),
			"count", len(msgs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMessages(snapshotHTML)
}
