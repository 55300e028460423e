package main

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// CacheClearCmd is the "cache clear" subcommand. Cache records are never
// rewritten in place, so deleting them is the only way to force a rescan
// short of bumping the format version.
type CacheClearCmd struct{}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	entries, err := os.ReadDir(deps.CacheDir)
	if errors.Is(err, iofs.ErrNotExist) {
		fmt.Fprintln(deps.Stdout, "Cache is empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache directory %q: %w", deps.CacheDir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(deps.CacheDir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove cache record %q: %w", entry.Name(), err)
		}
		removed++
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cache records\n", removed)
	return nil
}
