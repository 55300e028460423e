package mock

import (
	"context"

	"github.com/javanav/javanav"
)

var _ javanav.RootService = (*RootService)(nil)

// RootService is a mock implementation of javanav.RootService.
type RootService struct {
	CreateRootFn   func(ctx context.Context, root *javanav.Root) error
	FindRootByIDFn func(ctx context.Context, id string) (*javanav.Root, error)
	FindRootsFn    func(ctx context.Context, filter javanav.RootFilter) ([]*javanav.Root, error)
	DeleteRootFn   func(ctx context.Context, id string) error
}

func (s *RootService) CreateRoot(ctx context.Context, root *javanav.Root) error {
	return s.CreateRootFn(ctx, root)
}

func (s *RootService) FindRootByID(ctx context.Context, id string) (*javanav.Root, error) {
	return s.FindRootByIDFn(ctx, id)
}

func (s *RootService) FindRoots(ctx context.Context, filter javanav.RootFilter) ([]*javanav.Root, error) {
	return s.FindRootsFn(ctx, filter)
}

func (s *RootService) DeleteRoot(ctx context.Context, id string) error {
	return s.DeleteRootFn(ctx, id)
}
