package main

import (
	"fmt"
	"strings"

	"github.com/javanav/javanav"
)

// Run executes the resolve command. A name that resolves prints its
// location; a miss is a normal outcome and prints nothing.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	if err := loadRoots(deps, c.Root); err != nil {
		return err
	}

	if location, ok := deps.Manager.Resolve(c.Name); ok {
		fmt.Fprintln(deps.Stdout, location)
		return nil
	}

	if !c.Pick {
		return nil
	}

	var candidates []string
	for _, name := range deps.Manager.ClassNames() {
		if strings.HasPrefix(name, c.Name) || strings.HasSuffix(name, "."+c.Name) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	choice, err := deps.Complete(deps.Ctx, candidates)
	if err != nil {
		if javanav.ErrorCode(err) == javanav.ENOTFOUND {
			return nil // user declined to pick
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	if location, ok := deps.Manager.Resolve(choice); ok {
		fmt.Fprintln(deps.Stdout, location)
	}
	return nil
}
