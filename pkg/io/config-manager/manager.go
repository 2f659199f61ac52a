// Package configmanager defines the contract shared by the configuration loaders.
package configmanager

import (
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
)

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Timer enables timing output in notifications when provided.
	Timer timer.Timer
	// Silent suppresses all loading notifications when true.
	Silent bool
	// IgnoreConfigFile skips reading on-disk config files when true (env and defaults only).
	IgnoreConfigFile bool
}

// ConfigManager loads a configuration of type T.
type ConfigManager[T any] interface {
	// Load returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}
