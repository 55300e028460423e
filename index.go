package javanav

import "context"

// Scanner walks a documentation tree and maps each class page it finds to
// its qualified name.
type Scanner interface {
	// Scan recursively lists dir, deriving a class entry from every
	// eligible file. root is the canonicalized root the qualified names
	// are computed against; top-level callers pass dir == root.
	// A subtree that cannot be read fails the whole scan with the
	// offending path in the error.
	Scan(ctx context.Context, dir, root string) (map[string]string, error)
}

// CacheStore persists one root's scan result as a versioned record on disk.
type CacheStore interface {
	// Key derives the deterministic record name for a root directory or
	// remote URL key. The transform is lossy by design (separators and
	// colons are substituted, not hashed).
	Key(rootOrURL string) string

	// Load reads the record with the given key.
	// Returns ECACHEMISS if no record exists and ECORRUPT if the record
	// cannot be decoded.
	Load(ctx context.Context, key string) (map[string]string, error)

	// Save writes the record atomically, creating the cache directory if
	// needed. A concurrent reader never observes a partial record.
	Save(ctx context.Context, key string, classes map[string]string) error
}

// SnapshotStore reads pre-packaged cache records bundled with the system.
// Snapshots are read-only; there is no fallback scan for a remote key.
type SnapshotStore interface {
	// Load reads the packaged record for a remote URL key.
	// Returns ENOSNAPSHOT if no snapshot is bundled for that key.
	Load(ctx context.Context, urlKey string) (map[string]string, error)
}

// IndexService populates the merged class index from documentation roots.
type IndexService interface {
	// Clear resets the index and the set of loaded roots.
	Clear()

	// IsLoaded reports whether a canonicalized root identity has already
	// been merged.
	IsLoaded(rootID string) bool

	// AddRoot canonicalizes ref and merges its classes into the index,
	// scanning the tree only on a cache miss. Loading the same root twice
	// is a no-op.
	AddRoot(ctx context.Context, ref string) error

	// AddRoots applies AddRoot to each reference, merging in input order.
	// The first failure aborts the batch before anything is merged.
	AddRoots(ctx context.Context, refs []string) error

	// LoadSnapshots merges packaged snapshots for remote URL keys.
	LoadSnapshots(ctx context.Context, urlKeys []string) error
}

// LookupService is the read-only query surface over the merged index.
type LookupService interface {
	// CoreIndexed reports whether the sentinel class (CoreClass) is
	// present, i.e. whether standard library docs have been loaded.
	CoreIndexed() bool

	// ClassNames returns every indexed name, sorted per SortClassNames.
	ClassNames() []string

	// Resolve maps a qualified name to its location. Absence is a normal
	// outcome, not an error.
	Resolve(name string) (string, bool)
}

// CompleteFunc selects one name from a list of candidates. It is supplied
// by the embedding application; the core never knows which UI presents the
// choice. Returning ENOTFOUND means the user declined to pick.
type CompleteFunc func(ctx context.Context, candidates []string) (string, error)
