// Package io provides configuration loading.
//
// Subpackages:
//   - config-manager: the ConfigManager contract with environment and kind implementations
package io
