package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javanav/javanav"
	"github.com/javanav/javanav/fs"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	info, err := os.Stat(c.Path)
	if err != nil || !info.IsDir() {
		err := javanav.Errorf(javanav.EINVALID, "%q is not a directory", c.Path)
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	rootID, err := fs.Canonicalize(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	name := c.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(c.Path))
	}

	root := &javanav.Root{Name: name, Path: rootID}
	if err := deps.Roots.CreateRoot(deps.Ctx, root); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added root %q (%s)\n", name, rootID)

	// Index immediately so the cache record is warm for later lookups.
	if err := deps.Manager.AddRoot(deps.Ctx, rootID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Indexed %d classes\n", len(deps.Manager.ClassNames()))
	return nil
}
