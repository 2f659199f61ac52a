// Package utils groups small helpers shared by the install and uninstall commands:
//
//   - envvar: ${VAR} expansion for configuration values
//   - notify: formatted progress messages with symbols and colors
//   - runner: cobra command execution with captured output
//   - timer: total and per-stage timing
package utils
