package cache_test

import (
	"context"
	"testing"

	"github.com/javanav/javanav"
	"github.com/javanav/javanav/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDir_Load(t *testing.T) {
	t.Parallel()

	const url = "https://docs.oracle.com/javase/8/docs/api/"

	t.Run("reads a packaged record", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()
		classes := map[string]string{
			"java.lang.Object": url + "java/lang/Object.html",
		}

		// Packaging writes records with the same store layout.
		packager := cache.NewStore(dir, true)
		require.NoError(t, packager.Save(ctx, packager.Key(url), classes))

		snapshots := cache.NewSnapshotDir(dir, true)
		got, err := snapshots.Load(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, classes, got)
	})

	t.Run("missing snapshot is a hard failure", func(t *testing.T) {
		t.Parallel()

		snapshots := cache.NewSnapshotDir(t.TempDir(), false)

		_, err := snapshots.Load(context.Background(), url)
		require.Error(t, err)
		assert.Equal(t, javanav.ENOSNAPSHOT, javanav.ErrorCode(err))
		assert.Contains(t, javanav.ErrorMessage(err), url)
	})
}
