// Package apis provides the configuration types for the 2048 demo environment.
//
//   - environment: the game2048.yaml configuration, versioned under v1alpha1
package apis
