// Package hosts adds and removes the game's entry in the local hosts file.
//
// Only Linux and macOS hosts files are edited. On any other platform the editor
// leaves the file alone and returns an error wrapping ErrUnsupportedPlatform that
// tells the user what to change by hand.
package hosts
