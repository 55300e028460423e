package main

import (
	"fmt"

	"github.com/javanav/javanav"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	roots, err := deps.Roots.FindRoots(deps.Ctx, javanav.RootFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}
	if len(roots) == 0 {
		err := javanav.Errorf(javanav.ENOTFOUND, "root %q not found", c.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	if err := deps.Roots.DeleteRoot(deps.Ctx, roots[0].ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed root %q\n", c.Name)
	return nil
}
