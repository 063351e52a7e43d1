package main

import (
	"fmt"
	"slices"
)

// Run executes the dialects command.
func (c *DialectsCmd) Run(deps *Dependencies) error {
	dialects := deps.Dialects.List()
	slices.Sort(dialects)
	for _, d := range dialects {
		fmt.Fprintln(deps.Stdout, d)
	}
	return nil
}
