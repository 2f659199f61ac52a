// Package configmanager loads the v1alpha1.Environment used by the install and uninstall commands.
//
// Values are layered as defaults < game2048.yaml < GAME2048_* environment variables, and
// ${VAR} placeholders in string values are expanded afterwards.
//
// This package shares the "configmanager" package name with its parent directory
// (pkg/io/config-manager). Import with an alias for clarity:
//
//	import envconfigmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager/environment"
package configmanager
