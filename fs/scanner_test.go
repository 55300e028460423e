package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javanav/javanav"
	"github.com/javanav/javanav/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (given as slash-separated relative paths) under a
// fresh temp dir and returns its canonicalized root.
func writeTree(t *testing.T, paths ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("<html></html>"), 0o644))
	}
	root, err := fs.Canonicalize(dir)
	require.NoError(t, err)
	return root
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("derives qualified names from the tree", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t,
			"Foo.html",
			"pkg/sub/Bar.html",
			"pkg/package-summary.html",
			"index.html",
			"stylesheet.css",
		)

		classes, err := fs.NewScanner().Scan(context.Background(), root, root)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"Foo":         root + "Foo.html",
			"pkg.sub.Bar": root + filepath.FromSlash("pkg/sub/Bar.html"),
		}, classes)
	})

	t.Run("class-use directories contribute nothing", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t,
			"pkg/Foo.html",
			"pkg/class-use/Foo.html",
			"class-use/Bar.html",
		)

		classes, err := fs.NewScanner().Scan(context.Background(), root, root)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"pkg.Foo": root + filepath.FromSlash("pkg/Foo.html"),
		}, classes)
	})

	t.Run("hidden entries are skipped", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t,
			"Visible.html",
			".Hidden.html",
			".git/Sneaky.html",
		)

		classes, err := fs.NewScanner().Scan(context.Background(), root, root)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"Visible": root + "Visible.html",
		}, classes)
	})

	t.Run("extra exclusion globs are honored", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t,
			"Keep.html",
			"generated-v1/Skip.html",
			"generated-v2/Skip.html",
		)

		classes, err := fs.NewScanner("generated-*").Scan(context.Background(), root, root)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"Keep": root + "Keep.html",
		}, classes)
	})

	t.Run("scanning twice yields identical mappings", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, "Foo.html", "a/b/C.html", "a/D.html")
		scanner := fs.NewScanner()

		first, err := scanner.Scan(context.Background(), root, root)
		require.NoError(t, err)
		second, err := scanner.Scan(context.Background(), root, root)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("missing directory fails with the path in the error", func(t *testing.T) {
		t.Parallel()

		root, err := fs.Canonicalize(filepath.Join(t.TempDir(), "gone"))
		require.NoError(t, err)

		_, err = fs.NewScanner().Scan(context.Background(), root, root)
		require.Error(t, err)
		assert.Equal(t, javanav.EINTERNAL, javanav.ErrorCode(err))
		assert.Contains(t, javanav.ErrorMessage(err), root)
	})

	t.Run("empty tree yields empty mapping", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t)
		classes, err := fs.NewScanner().Scan(context.Background(), root, root)
		require.NoError(t, err)
		assert.Empty(t, classes)
	})
}
