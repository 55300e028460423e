package mock

import (
	"context"

	"github.com/javanav/javanav"
)

var _ javanav.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of javanav.CacheStore.
type CacheStore struct {
	KeyFn  func(rootOrURL string) string
	LoadFn func(ctx context.Context, key string) (map[string]string, error)
	SaveFn func(ctx context.Context, key string, classes map[string]string) error
}

func (s *CacheStore) Key(rootOrURL string) string {
	return s.KeyFn(rootOrURL)
}

func (s *CacheStore) Load(ctx context.Context, key string) (map[string]string, error) {
	return s.LoadFn(ctx, key)
}

func (s *CacheStore) Save(ctx context.Context, key string, classes map[string]string) error {
	return s.SaveFn(ctx, key, classes)
}
