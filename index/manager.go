// Package index maintains the merged class index across documentation
// roots, deciding per root whether to scan the tree or restore a cache
// record.
package index

import (
	"context"
	"sync"

	"github.com/javanav/javanav"
	"github.com/javanav/javanav/fs"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var (
	_ javanav.IndexService  = (*Manager)(nil)
	_ javanav.LookupService = (*Manager)(nil)
)

// Manager owns the process-wide class index and the set of loaded roots.
// All mutations happen under one lock; a root's entries are merged
// all-or-nothing, so readers never observe a half-merged root.
type Manager struct {
	// Scanner walks roots on a cache miss.
	Scanner javanav.Scanner

	// Cache persists and restores per-root scan results.
	Cache javanav.CacheStore

	// Snapshots reads packaged records for remote URL keys. Optional;
	// LoadSnapshots fails with ENOSNAPSHOT when unset.
	Snapshots javanav.SnapshotStore

	// Canonical normalizes a root reference to its identity.
	// Defaults to fs.Canonicalize.
	Canonical func(ref string) (string, error)

	mu      sync.Mutex
	classes map[string]string
	loaded  map[string]bool
}

// NewManager creates a Manager using the given scanner and cache store.
func NewManager(scanner javanav.Scanner, cache javanav.CacheStore) *Manager {
	return &Manager{Scanner: scanner, Cache: cache}
}

func (m *Manager) canonical(ref string) (string, error) {
	if m.Canonical != nil {
		return m.Canonical(ref)
	}
	return fs.Canonicalize(ref)
}

// init initializes the maps. Callers must hold mu.
func (m *Manager) init() {
	if m.classes == nil {
		m.classes = make(map[string]string)
		m.loaded = make(map[string]bool)
	}
}

// Clear resets the index and the loaded set to empty.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classes = make(map[string]string)
	m.loaded = make(map[string]bool)
}

// IsLoaded reports whether a root identity has already been merged.
func (m *Manager) IsLoaded(rootID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded[rootID]
}

// AddRoot canonicalizes ref and merges its classes into the index. A cache
// hit skips the scan entirely; a miss scans the tree and persists the
// result before merging. Re-adding a loaded root, however it is spelled,
// is a no-op. A corrupt cache record fails the load without touching the
// index; clearing the cache directory (or bumping the format version)
// forces a rescan.
func (m *Manager) AddRoot(ctx context.Context, ref string) error {
	rootID, err := m.canonical(ref)
	if err != nil {
		return err
	}
	if m.IsLoaded(rootID) {
		return nil
	}
	classes, err := m.loadOrScan(ctx, rootID)
	if err != nil {
		return err
	}
	m.merge(rootID, classes)
	return nil
}

// AddRoots canonicalizes every reference, restores or scans the missing
// roots concurrently, then merges the results strictly in input order, so
// last-write-wins conflicts resolve the same way as sequential AddRoot
// calls. The first failure aborts the batch before anything is merged.
func (m *Manager) AddRoots(ctx context.Context, refs []string) error {
	var ids []string
	seen := make(map[string]bool)
	for _, ref := range refs {
		id, err := m.canonical(ref)
		if err != nil {
			return err
		}
		if seen[id] || m.IsLoaded(id) {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	results := make([]map[string]string, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			classes, err := m.loadOrScan(gctx, id)
			if err != nil {
				return err
			}
			results[i] = classes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, id := range ids {
		m.merge(id, results[i])
	}
	return nil
}

// LoadSnapshots merges packaged records for remote URL keys. The URL string
// itself is the loaded-set identity. A key with no packaged snapshot fails
// with ENOSNAPSHOT; there is no fallback scan.
func (m *Manager) LoadSnapshots(ctx context.Context, urlKeys []string) error {
	for _, url := range urlKeys {
		if m.IsLoaded(url) {
			continue
		}
		if m.Snapshots == nil {
			return javanav.Errorf(javanav.ENOSNAPSHOT, "no snapshot store configured")
		}
		classes, err := m.Snapshots.Load(ctx, url)
		if err != nil {
			return err
		}
		m.merge(url, classes)
	}
	return nil
}

func (m *Manager) loadOrScan(ctx context.Context, rootID string) (map[string]string, error) {
	key := m.Cache.Key(rootID)
	classes, err := m.Cache.Load(ctx, key)
	if err == nil {
		return classes, nil
	}
	if javanav.ErrorCode(err) != javanav.ECACHEMISS {
		return nil, err
	}
	classes, err = m.Scanner.Scan(ctx, rootID, rootID)
	if err != nil {
		return nil, err
	}
	if err := m.Cache.Save(ctx, key, classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// merge applies one root's fully-decoded mapping to the index. Later roots
// overwrite earlier entries for the same qualified name.
func (m *Manager) merge(rootID string, classes map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	if m.loaded[rootID] {
		return
	}
	for name, location := range classes {
		m.classes[name] = location
	}
	m.loaded[rootID] = true
}

// CoreIndexed reports whether the standard library documentation has been
// loaded, using javanav.CoreClass as the sentinel.
func (m *Manager) CoreIndexed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.classes[javanav.CoreClass]
	return ok
}

// ClassNames returns every indexed qualified name, shortest first with ties
// in natural string order.
func (m *Manager) ClassNames() []string {
	m.mu.Lock()
	names := make([]string, 0, len(m.classes))
	for name := range m.classes {
		names = append(names, name)
	}
	m.mu.Unlock()
	javanav.SortClassNames(names)
	return names
}

// Resolve maps a qualified name to its location. Absence is a normal
// outcome.
func (m *Manager) Resolve(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	location, ok := m.classes[name]
	return location, ok
}
