// Package preflight verifies that the external tools a procedure shells out to are installed.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrToolNotFound is returned when a required executable does not resolve on PATH.
var ErrToolNotFound = errors.New("required tool not found")

// LookupFunc resolves an executable name to a path, like exec.LookPath.
type LookupFunc func(name string) (string, error)

// Checker checks tool presence.
type Checker struct {
	lookup LookupFunc
}

// NewChecker creates a Checker that resolves tools with exec.LookPath.
func NewChecker() *Checker {
	return NewCheckerWithLookup(exec.LookPath)
}

// NewCheckerWithLookup creates a Checker with a custom resolver.
func NewCheckerWithLookup(lookup LookupFunc) *Checker {
	return &Checker{lookup: lookup}
}

// Check resolves every tool in order and stops at the first one that is missing.
func (c *Checker) Check(ctx context.Context, tools ...string) error {
	for _, tool := range tools {
		err := ctx.Err()
		if err != nil {
			return fmt.Errorf("tool check interrupted: %w", err)
		}

		_, err = c.lookup(tool)
		if err != nil {
			return fmt.Errorf("%w: %s is not installed. Please install it first", ErrToolNotFound, tool)
		}
	}

	return nil
}
