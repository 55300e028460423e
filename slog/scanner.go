// Package slog provides logging decorators for javanav services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/javanav/javanav"
)

// Ensure LoggingScanner implements javanav.Scanner.
var _ javanav.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with timing and entry-count logging.
type LoggingScanner struct {
	next   javanav.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next javanav.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the outcome.
func (s *LoggingScanner) Scan(ctx context.Context, dir, root string) (map[string]string, error) {
	begin := time.Now()
	classes, err := s.next.Scan(ctx, dir, root)
	if err != nil {
		s.logger.Error("scan failed",
			"root", root,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("scanned root",
		"root", root,
		"classes", len(classes),
		"duration", time.Since(begin),
	)
	return classes, nil
}
