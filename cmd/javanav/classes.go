package main

import "fmt"

// Run executes the classes command.
func (c *ClassesCmd) Run(deps *Dependencies) error {
	if err := loadRoots(deps, c.Root); err != nil {
		return err
	}

	for _, name := range deps.Manager.ClassNames() {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
