package index_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javanav/javanav"
	"github.com/javanav/javanav/cache"
	"github.com/javanav/javanav/fs"
	"github.com/javanav/javanav/index"
	"github.com/javanav/javanav/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_EndToEnd runs the real scanner and cache store against a
// Javadoc-shaped tree: the first manager scans and persists, a second
// manager sharing the cache directory restores without scanning.
func TestManager_EndToEnd(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	for _, p := range []string{
		"java/lang/Object.html",
		"java/lang/String.html",
		"java/util/class-use/List.html",
		"java/util/List.html",
		"java/util/package-summary.html",
	} {
		full := filepath.Join(docs, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("<html></html>"), 0o644))
	}

	cacheDir := t.TempDir()
	ctx := context.Background()

	first := index.NewManager(fs.NewScanner(), cache.NewStore(cacheDir, true))
	require.NoError(t, first.AddRoot(ctx, docs))

	assert.True(t, first.CoreIndexed())
	assert.Equal(t, []string{
		"java.lang.Object",
		"java.lang.String",
		"java.util.List",
	}, first.ClassNames())

	root, err := fs.Canonicalize(docs)
	require.NoError(t, err)
	location, ok := first.Resolve("java.util.List")
	require.True(t, ok)
	assert.Equal(t, root+filepath.FromSlash("java/util/List.html"), location)

	// A fresh manager over the same cache dir must restore, never rescan.
	second := index.NewManager(&mock.Scanner{
		ScanFn: func(ctx context.Context, dir, root string) (map[string]string, error) {
			t.Error("second manager must restore from cache")
			return nil, javanav.Errorf(javanav.EINTERNAL, "unexpected scan of %s", dir)
		},
	}, cache.NewStore(cacheDir, true))
	require.NoError(t, second.AddRoot(ctx, docs))

	assert.Equal(t, first.ClassNames(), second.ClassNames())
}
