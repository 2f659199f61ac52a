package di

import (
	"fmt"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveConfigManagerFactory retrieves the config manager factory from the injector.
func ResolveConfigManagerFactory(injector Injector) (ConfigManagerFactory, error) {
	factory, err := do.Invoke[ConfigManagerFactory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve config manager dependency: %w", err)
	}

	return factory, nil
}

// ResolveEnvironmentFactory retrieves the install/uninstall dependency factory from the injector.
func ResolveEnvironmentFactory(injector Injector) (environment.Factory, error) {
	factory, err := do.Invoke[environment.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve environment factory dependency: %w", err)
	}

	return factory, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
