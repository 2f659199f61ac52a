// Package notify prints the progress of the install and uninstall commands.
//
// Messages carry a type-specific symbol and color: success (✔), error (✗),
// warning (⚠), info (ℹ), activity (►) and emoji-prefixed stage titles.
// [StageSeparatingWriter] inserts a blank line before each stage title and
// [StatusLine] renders a single line that is rewritten in place.
package notify
