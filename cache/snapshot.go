package cache

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/javanav/javanav"
)

// Ensure SnapshotDir implements javanav.SnapshotStore at compile time.
var _ javanav.SnapshotStore = (*SnapshotDir)(nil)

// SnapshotDir reads pre-packaged cache records bundled alongside the
// system. Snapshots are keyed identically to user cache records but are
// never written by this process; a missing snapshot is a hard failure,
// since a remote URL key has no local tree to fall back to scanning.
type SnapshotDir struct {
	// Dir is the packaged snapshot directory.
	Dir string

	// Compress reports whether the packaged records are gzipped.
	Compress bool

	// Version overrides the format version tag. Defaults to Version.
	Version string
}

// NewSnapshotDir creates a SnapshotDir reading from dir.
func NewSnapshotDir(dir string, compress bool) *SnapshotDir {
	return &SnapshotDir{Dir: dir, Compress: compress}
}

// Load reads the packaged record for a remote URL key.
func (s *SnapshotDir) Load(ctx context.Context, urlKey string) (map[string]string, error) {
	store := Store{Compress: s.Compress, Version: s.Version}
	path := filepath.Join(s.Dir, store.Key(urlKey))
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, javanav.Errorf(javanav.ENOSNAPSHOT, "no packaged snapshot for %q", urlKey)
	}
	if err != nil {
		return nil, javanav.Errorf(javanav.EINTERNAL, "open snapshot %s: %v", path, err)
	}
	defer f.Close()
	return decode(f, path, s.Compress)
}
