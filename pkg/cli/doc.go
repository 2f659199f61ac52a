// Package cli provides the command tree and its supporting helpers.
//
//   - cli/cmd: the game2048 root command with install and uninstall
//   - cli/flags: persistent flag handling including timing detection
//   - cli/ui/errorhandler: cobra execution with normalized error output
package cli
