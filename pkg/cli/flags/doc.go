// Package flags provides flag handling utilities for CLI commands.
//
// It contains the timing flag detection used to decide whether stage durations are printed.
package flags
