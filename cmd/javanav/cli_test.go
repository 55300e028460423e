package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/javanav/javanav"
	main "github.com/javanav/javanav/cmd/javanav"
	"github.com/javanav/javanav/index"
	"github.com/javanav/javanav/mock"
)

// testDeps builds Dependencies around a Manager whose scanner serves the
// given per-root mappings and whose cache store always misses. The mock
// canonical form is the reference with one trailing slash.
func testDeps(t *testing.T, trees map[string]map[string]string, roots []*javanav.Root) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	manager := index.NewManager(&mock.Scanner{
		ScanFn: func(ctx context.Context, dir, root string) (map[string]string, error) {
			classes, ok := trees[root]
			if !ok {
				return nil, javanav.Errorf(javanav.EINTERNAL, "scan %s: no such tree", root)
			}
			return classes, nil
		},
	}, &mock.CacheStore{
		KeyFn: func(rootOrURL string) string { return rootOrURL + "-v2" },
		LoadFn: func(ctx context.Context, key string) (map[string]string, error) {
			return nil, javanav.Errorf(javanav.ECACHEMISS, "no cache record %s", key)
		},
		SaveFn: func(ctx context.Context, key string, classes map[string]string) error {
			return nil
		},
	})
	manager.Canonical = func(ref string) (string, error) {
		return strings.TrimRight(ref, "/") + "/", nil
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Roots: &mock.RootService{
			FindRootsFn: func(ctx context.Context, filter javanav.RootFilter) ([]*javanav.Root, error) {
				return roots, nil
			},
		},
		Manager: manager,
		Complete: func(ctx context.Context, candidates []string) (string, error) {
			if len(candidates) == 0 {
				return "", javanav.Errorf(javanav.ENOTFOUND, "nothing to pick from")
			}
			return candidates[0], nil
		},
	}
	return deps, stdout, stderr
}
