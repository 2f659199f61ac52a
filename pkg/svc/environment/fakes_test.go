package environment_test

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/hosts"
	kindprovisioner "github.com/kadirariklar/game-2048-for-k8s/pkg/svc/provisioner/cluster/kind"
)

// world records every call and keeps just enough state to make the
// uninstaller's existence checks meaningful.
type world struct {
	calls []string

	missingTools  []string
	clusterExists bool
	imageExists   bool
	hostsPresent  bool
	hostsStale    bool
	platform      hosts.Platform

	failOn   map[string]error
	podReady [2]int
}

func newWorld() *world {
	return &world{platform: hosts.Linux, failOn: map[string]error{}, podReady: [2]int{1, 1}}
}

func (w *world) record(call string) error {
	w.calls = append(w.calls, call)

	return w.failOn[call]
}

func (w *world) dependencies() environment.Dependencies {
	return environment.Dependencies{
		Tools:     fakeTools{w},
		Cluster:   fakeCluster{w},
		Images:    fakeImages{w},
		Manifests: fakeManifests{w},
		Readiness: fakeReadiness{w},
		Hosts:     fakeHosts{w},
	}
}

type fakeTools struct{ w *world }

func (f fakeTools) Check(_ context.Context, tools ...string) error {
	err := f.w.record("check " + strings.Join(tools, ","))
	if err != nil {
		return err
	}

	for _, tool := range tools {
		if slices.Contains(f.w.missingTools, tool) {
			return fmt.Errorf("%s is not installed. Please install it first", tool)
		}
	}

	return nil
}

type fakeCluster struct{ w *world }

func (f fakeCluster) Create(_ context.Context, name string) error {
	err := f.w.record("create " + name)
	if err == nil {
		f.w.clusterExists = true
	}

	return err
}

func (f fakeCluster) Delete(_ context.Context, name string) error {
	err := f.w.record("delete " + name)
	if err != nil {
		return err
	}

	if !f.w.clusterExists {
		return fmt.Errorf("%w: %s", kindprovisioner.ErrClusterNotFound, name)
	}

	f.w.clusterExists = false

	return nil
}

func (f fakeCluster) LoadImage(_ context.Context, image, name string) error {
	return f.w.record("load " + image + " " + name)
}

type fakeImages struct{ w *world }

func (f fakeImages) Build(_ context.Context, contextDir, tag string) error {
	err := f.w.record("build " + tag + " " + contextDir)
	if err == nil {
		f.w.imageExists = true
	}

	return err
}

func (f fakeImages) Exists(_ context.Context, tag string) (bool, error) {
	err := f.w.record("exists " + tag)

	return f.w.imageExists, err
}

func (f fakeImages) Remove(_ context.Context, tag string) error {
	err := f.w.record("remove " + tag)
	if err == nil {
		f.w.imageExists = false
	}

	return err
}

type fakeManifests struct{ w *world }

func (f fakeManifests) Apply(_ context.Context, source string) error {
	return f.w.record("apply " + source)
}

func (f fakeManifests) Get(_ context.Context, resources string, namespace string) error {
	return f.w.record(strings.TrimSpace("get " + resources + " " + namespace))
}

type fakeReadiness struct{ w *world }

func (f fakeReadiness) WaitForNodes(_ context.Context, timeout time.Duration) error {
	return f.w.record(fmt.Sprintf("wait nodes %s", timeout))
}

func (f fakeReadiness) WaitForPods(
	_ context.Context,
	namespace string,
	selector string,
	timeout time.Duration,
	progress readiness.ProgressFunc,
) error {
	progress(0, f.w.podReady[1])
	progress(f.w.podReady[0], f.w.podReady[1])

	return f.w.record(strings.TrimSpace(fmt.Sprintf("wait pods %s %s %s", selector, timeout, namespace)))
}

func (f fakeReadiness) DiagnosePods(_ context.Context, namespace, selector string) string {
	_ = f.w.record(strings.TrimSpace("diagnose " + selector + " " + namespace))

	return "game-2048-abc: ErrImagePull for game-2048-image"
}

type fakeHosts struct{ w *world }

func (f fakeHosts) Add(_ context.Context) (hosts.Result, error) {
	err := f.w.record("hosts add")
	if err != nil {
		return hosts.NotPresent, err
	}

	if !f.w.platform.Supported() {
		return hosts.NotPresent, fmt.Errorf(
			"%w (windows). Please add 127.0.0.1 2048.local to your hosts file manually",
			hosts.ErrUnsupportedPlatform,
		)
	}

	if f.w.hostsPresent {
		return hosts.AlreadyPresent, nil
	}

	f.w.hostsPresent = true

	if f.w.hostsStale {
		f.w.hostsStale = false

		return hosts.Replaced, nil
	}

	return hosts.Added, nil
}

func (f fakeHosts) Remove(_ context.Context) (hosts.Result, error) {
	err := f.w.record("hosts remove")
	if err != nil {
		return hosts.NotPresent, err
	}

	if !f.w.platform.Supported() {
		return hosts.NotPresent, fmt.Errorf(
			"%w (windows). Please remove the entry for 2048.local manually",
			hosts.ErrUnsupportedPlatform,
		)
	}

	if !f.w.hostsPresent {
		return hosts.NotPresent, nil
	}

	f.w.hostsPresent = false

	return hosts.Removed, nil
}
