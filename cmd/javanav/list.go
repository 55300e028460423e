package main

import (
	"fmt"

	"github.com/javanav/javanav"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	roots, err := deps.Roots.FindRoots(deps.Ctx, javanav.RootFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	if len(roots) == 0 {
		fmt.Fprintln(deps.Stdout, "No roots registered. Run 'javanav add <path>' to register one.")
		return nil
	}

	for _, root := range roots {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", root.Name, root.Path)
	}
	return nil
}
