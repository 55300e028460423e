package mock

import (
	"context"

	"github.com/javanav/javanav"
)

var _ javanav.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of javanav.SnapshotStore.
type SnapshotStore struct {
	LoadFn func(ctx context.Context, urlKey string) (map[string]string, error)
}

func (s *SnapshotStore) Load(ctx context.Context, urlKey string) (map[string]string, error) {
	return s.LoadFn(ctx, urlKey)
}
