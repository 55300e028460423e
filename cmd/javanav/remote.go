package main

import (
	"fmt"

	"github.com/javanav/javanav"
)

// Run executes the remote command.
func (c *RemoteCmd) Run(deps *Dependencies) error {
	if err := deps.Manager.LoadSnapshots(deps.Ctx, c.URLs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d snapshots (%d classes)\n",
		len(c.URLs), len(deps.Manager.ClassNames()))
	return nil
}
