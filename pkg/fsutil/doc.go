// Package fsutil provides path helpers for user-supplied file locations.
package fsutil
