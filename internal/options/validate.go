// Package options provides shared utilities for option validation across packages.
package options

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource is wrapped when no input source option was given.
	ErrNoSource = errors.New("must specify an input source")
	// ErrMultipleSources is wrapped when more than one input source option was given.
	ErrMultipleSources = errors.New("must specify exactly one input source")
)

// RequireSingleSource ensures exactly one input source is set. hint names
// the options that select a source and is appended to the no-source error.
func RequireSingleSource(pkg, hint string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return fmt.Errorf("%s: %w (use %s)", pkg, ErrNoSource, hint)
	case count > 1:
		return fmt.Errorf("%s: %w", pkg, ErrMultipleSources)
	default:
		return nil
	}
}
