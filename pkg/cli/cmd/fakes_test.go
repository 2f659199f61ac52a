package cmd_test

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	runtime "github.com/kadirariklar/game-2048-for-k8s/pkg/di"
	configmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	envconfigmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/hosts"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

var errDockerUnavailable = errors.New("cannot connect to the Docker daemon")

// fakeFactory hands out collaborators that always succeed, or fails itself when err is set.
type fakeFactory struct {
	err error
	// buildErr makes the image build fail.
	buildErr error
}

func (f fakeFactory) InstallDependencies(
	_ *v1alpha1.Environment,
	out io.Writer,
	tmr timer.Timer,
) (environment.Dependencies, error) {
	return f.dependencies(out, tmr)
}

func (f fakeFactory) UninstallDependencies(
	_ *v1alpha1.Environment,
	out io.Writer,
	tmr timer.Timer,
) (environment.Dependencies, error) {
	return f.dependencies(out, tmr)
}

func (f fakeFactory) dependencies(out io.Writer, tmr timer.Timer) (environment.Dependencies, error) {
	if f.err != nil {
		return environment.Dependencies{}, f.err
	}

	return environment.Dependencies{
		Tools:     okTools{},
		Cluster:   okCluster{},
		Images:    okImages{buildErr: f.buildErr},
		Manifests: okManifests{},
		Readiness: okReadiness{},
		Hosts:     okHosts{},
		Timer:     tmr,
		Out:       out,
	}, nil
}

type okTools struct{}

func (okTools) Check(context.Context, ...string) error { return nil }

type okCluster struct{}

func (okCluster) Create(context.Context, string) error            { return nil }
func (okCluster) Delete(context.Context, string) error            { return nil }
func (okCluster) LoadImage(context.Context, string, string) error { return nil }

type okImages struct{ buildErr error }

func (i okImages) Build(context.Context, string, string) error { return i.buildErr }
func (okImages) Exists(context.Context, string) (bool, error)  { return true, nil }
func (okImages) Remove(context.Context, string) error          { return nil }

type okManifests struct{}

func (okManifests) Apply(context.Context, string) error       { return nil }
func (okManifests) Get(context.Context, string, string) error { return nil }

type okReadiness struct{}

func (okReadiness) WaitForNodes(context.Context, time.Duration) error { return nil }

func (okReadiness) WaitForPods(
	_ context.Context,
	_ string,
	_ string,
	_ time.Duration,
	progress readiness.ProgressFunc,
) error {
	progress(1, 1)

	return nil
}

func (okReadiness) DiagnosePods(context.Context, string, string) string { return "" }

type okHosts struct{}

func (okHosts) Add(context.Context) (hosts.Result, error)    { return hosts.Added, nil }
func (okHosts) Remove(context.Context) (hosts.Result, error) { return hosts.Removed, nil }

// newTestRuntime provides the real timer and config loader, reading no config file,
// together with factory.
func newTestRuntime(factory environment.Factory) *runtime.Runtime {
	return runtime.New(
		func(i runtime.Injector) error {
			do.Provide(i, func(runtime.Injector) (timer.Timer, error) {
				return timer.New(), nil
			})

			return nil
		},
		func(i runtime.Injector) error {
			do.Provide(i, func(runtime.Injector) (runtime.ConfigManagerFactory, error) {
				return func(out io.Writer) configmanager.ConfigManager[v1alpha1.Environment] {
					return envconfigmanager.NewConfigManagerWithFs(out, afero.NewMemMapFs())
				}, nil
			})

			return nil
		},
		func(i runtime.Injector) error {
			do.Provide(i, func(runtime.Injector) (environment.Factory, error) {
				return factory, nil
			})

			return nil
		},
	)
}
