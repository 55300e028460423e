package mock

import (
	"context"

	"github.com/javanav/javanav"
)

var _ javanav.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of javanav.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, dir, root string) (map[string]string, error)
}

func (s *Scanner) Scan(ctx context.Context, dir, root string) (map[string]string, error) {
	return s.ScanFn(ctx, dir, root)
}
