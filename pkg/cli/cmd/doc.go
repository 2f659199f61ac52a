// Package cmd provides the command-line interface of game2048.
//
// The root command carries the persistent --timing flag and two subcommands:
//   - install: create the kind cluster and deploy the game
//   - uninstall: remove the game, its image and its cluster
package cmd
