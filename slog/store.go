package slog

import (
	"context"
	"log/slog"

	"github.com/javanav/javanav"
)

// Ensure LoggingCacheStore implements javanav.CacheStore.
var _ javanav.CacheStore = (*LoggingCacheStore)(nil)

// LoggingCacheStore wraps a CacheStore with hit/miss and save logging.
type LoggingCacheStore struct {
	next   javanav.CacheStore
	logger *slog.Logger
}

// NewLoggingCacheStore creates a new LoggingCacheStore.
func NewLoggingCacheStore(next javanav.CacheStore, logger *slog.Logger) *LoggingCacheStore {
	return &LoggingCacheStore{next: next, logger: logger}
}

// Key delegates to the wrapped store.
func (s *LoggingCacheStore) Key(rootOrURL string) string {
	return s.next.Key(rootOrURL)
}

// Load delegates to the wrapped store, logging hits and misses.
func (s *LoggingCacheStore) Load(ctx context.Context, key string) (map[string]string, error) {
	classes, err := s.next.Load(ctx, key)
	switch javanav.ErrorCode(err) {
	case "":
		s.logger.Info("cache hit", "key", key, "classes", len(classes))
	case javanav.ECACHEMISS:
		s.logger.Info("cache miss", "key", key)
	default:
		s.logger.Error("cache load failed", "key", key, "error", err)
	}
	return classes, err
}

// Save delegates to the wrapped store and logs the written record.
func (s *LoggingCacheStore) Save(ctx context.Context, key string, classes map[string]string) error {
	if err := s.next.Save(ctx, key, classes); err != nil {
		s.logger.Error("cache save failed", "key", key, "error", err)
		return err
	}
	s.logger.Info("cache saved", "key", key, "classes", len(classes))
	return nil
}
