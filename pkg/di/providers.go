package di

import (
	"io"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	configmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	envconfigmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// ConfigManagerFactory creates the environment config manager reporting to out.
type ConfigManagerFactory func(out io.Writer) configmanager.ConfigManager[v1alpha1.Environment]

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command and tests.
// It registers the timer, the config manager factory and the environment factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideConfigManagerFactory,
		provideEnvironmentFactory,
	)
}

func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

func provideConfigManagerFactory(i Injector) error {
	do.Provide(i, func(Injector) (ConfigManagerFactory, error) {
		return func(out io.Writer) configmanager.ConfigManager[v1alpha1.Environment] {
			return envconfigmanager.NewConfigManager(out)
		}, nil
	})

	return nil
}

func provideEnvironmentFactory(i Injector) error {
	do.Provide(i, func(Injector) (environment.Factory, error) {
		return environment.NewDefaultFactory(), nil
	})

	return nil
}
