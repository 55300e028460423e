package main

import "fmt"

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	if err := loadRoots(deps, c.Root); err != nil {
		return err
	}

	core := "no"
	if deps.Manager.CoreIndexed() {
		core = "yes"
	}

	fmt.Fprintf(deps.Stdout, "Classes indexed:   %d\n", len(deps.Manager.ClassNames()))
	fmt.Fprintf(deps.Stdout, "Core docs loaded:  %s\n", core)
	return nil
}
