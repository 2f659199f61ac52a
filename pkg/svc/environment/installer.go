package environment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/hosts"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/notify"
)

// Installer creates the cluster and deploys the game onto it.
type Installer struct {
	env  *v1alpha1.Environment
	deps Dependencies
}

// NewInstaller creates an Installer for env.
func NewInstaller(env *v1alpha1.Environment, deps Dependencies) *Installer {
	if deps.Out == nil {
		deps.Out = io.Discard
	}

	return &Installer{env: env, deps: deps}
}

// Run executes every install step in order and returns a *StepError for the first
// one that fails. Steps after a failure do not run and nothing is rolled back.
func (i *Installer) Run(ctx context.Context) error {
	return runStages(ctx, i.deps.Out, i.deps.Timer, i.stages())
}

// Steps returns the step names in execution order.
func (i *Installer) Steps() []string {
	return stageNames(i.stages())
}

//nolint:funlen // the stage table reads best in one place
func (i *Installer) stages() []stage {
	env := i.env

	return []stage{
		{
			name: StepPreflight,
			info: StageInfo{
				Title:    "Check tools...",
				Emoji:    "🔍",
				Activity: "looking up " + strings.Join(env.Tools.Install, ", "),
			},
			run: func(ctx context.Context) (string, error) {
				return "all tools installed", i.deps.Tools.Check(ctx, env.Tools.Install...)
			},
		},
		{
			name: StepCreateCluster,
			info: StageInfo{
				Title:    "Create cluster...",
				Emoji:    "🚀",
				Activity: fmt.Sprintf("creating kind cluster '%s' from '%s'", env.Cluster.Name, env.Cluster.ConfigPath),
			},
			run: func(ctx context.Context) (string, error) {
				return "cluster created", i.deps.Cluster.Create(ctx, env.Cluster.Name)
			},
		},
		{
			name: StepWaitNodes,
			info: StageInfo{
				Title:    "Wait for nodes...",
				Emoji:    "⏳",
				Activity: "waiting for kind nodes to be ready",
			},
			run: i.waitForNodes,
		},
		{
			name: StepBuildImage,
			info: StageInfo{
				Title:    "Build image...",
				Emoji:    "🐳",
				Activity: fmt.Sprintf("building '%s' from '%s'", env.Image.Name, env.Image.BuildContext),
			},
			run: func(ctx context.Context) (string, error) {
				return "image built", i.deps.Images.Build(ctx, env.Image.BuildContext, env.Image.Name)
			},
		},
		{
			name: StepLoadImage,
			info: StageInfo{
				Title:    "Load image...",
				Emoji:    "📦",
				Activity: fmt.Sprintf("loading '%s' into '%s'", env.Image.Name, env.Cluster.Name),
			},
			run: func(ctx context.Context) (string, error) {
				return "image loaded", i.deps.Cluster.LoadImage(ctx, env.Image.Name, env.Cluster.Name)
			},
		},
		{
			name: StepApplyIngress,
			info: StageInfo{
				Title:    "Deploy ingress controller...",
				Emoji:    "🌐",
				Activity: "applying " + env.Ingress.ManifestURL,
			},
			run: func(ctx context.Context) (string, error) {
				return "ingress controller applied", i.deps.Manifests.Apply(ctx, env.Ingress.ManifestURL)
			},
		},
		{
			name: StepWaitIngress,
			info: StageInfo{
				Title:    "Wait for ingress controller...",
				Emoji:    "⏳",
				Activity: waitPodsActivity(env.Ingress.Selector, env.Ingress.Namespace),
			},
			run: func(ctx context.Context) (string, error) {
				return i.waitForPods(ctx, env.Ingress.Namespace, env.Ingress.Selector)
			},
		},
		{
			name: StepAddHostsEntry,
			info: StageInfo{
				Title:    "Add hosts entry...",
				Emoji:    "📝",
				Activity: fmt.Sprintf("adding '%s %s' to %s", env.Hosts.Address, env.Hosts.Hostname, env.Hosts.File),
			},
			run: i.addHostsEntry,
		},
		{
			name: StepApplyManifests,
			info: StageInfo{
				Title:    "Deploy application...",
				Emoji:    "🎮",
				Activity: "applying " + env.App.ManifestsDir,
			},
			run: func(ctx context.Context) (string, error) {
				return "application manifests applied", i.deps.Manifests.Apply(ctx, env.App.ManifestsDir)
			},
		},
		{
			name: StepWaitApp,
			info: StageInfo{
				Title:    "Wait for application...",
				Emoji:    "⏳",
				Activity: waitPodsActivity(env.App.Selector, env.App.Namespace),
			},
			run: func(ctx context.Context) (string, error) {
				return i.waitForPods(ctx, env.App.Namespace, env.App.Selector)
			},
		},
		{
			name: StepPrintState,
			info: StageInfo{
				Title: "Deployment completed!",
				Emoji: "🎉",
			},
			run: func(ctx context.Context) (string, error) {
				err := i.deps.Manifests.Get(ctx, "pods,svc,ingress", env.App.Namespace)
				if err != nil {
					return "", err
				}

				return "Open your browser at " + env.Hosts.URL(), nil
			},
		},
	}
}

func (i *Installer) waitForNodes(ctx context.Context) (string, error) {
	err := i.deps.Readiness.WaitForNodes(ctx, i.env.Readiness.NodeTimeout)
	if err != nil {
		if errors.Is(err, readiness.ErrTimeoutExceeded) {
			notify.Errorf(i.deps.Out, "timeout waiting for kind nodes")
			i.printDiagnostics(ctx, "nodes", "")
		}

		return "", fmt.Errorf("nodes not ready: %w", err)
	}

	return "all kind nodes are ready", nil
}

func (i *Installer) waitForPods(ctx context.Context, namespace, selector string) (string, error) {
	status := notify.NewStatusLine(i.deps.Out)

	var ready, total int

	err := i.deps.Readiness.WaitForPods(ctx, namespace, selector, i.env.Readiness.PodTimeout,
		func(r, t int) {
			ready, total = r, t
			status.Update("waiting for pod(s) to be ready: %d/%d", r, t)
		})

	status.Done()

	if err != nil {
		if errors.Is(err, readiness.ErrTimeoutExceeded) {
			notify.Errorf(i.deps.Out, "timeout waiting for pods %s", selector)
			i.printDiagnostics(ctx, "pods", namespace)

			if diagnosis := i.deps.Readiness.DiagnosePods(ctx, namespace, selector); diagnosis != "" {
				notify.Warningf(i.deps.Out, "%s", diagnosis)
			}
		}

		return "", fmt.Errorf("pods %s not ready: %w", selector, err)
	}

	return fmt.Sprintf("all pod(s) are ready! (%d/%d)", ready, total), nil
}

func (i *Installer) addHostsEntry(ctx context.Context) (string, error) {
	result, err := i.deps.Hosts.Add(ctx)
	if err != nil {
		if errors.Is(err, hosts.ErrUnsupportedPlatform) {
			notify.Warningf(i.deps.Out, "%v", err)

			return "", nil
		}

		return "", err
	}

	switch result {
	case hosts.AlreadyPresent:
		notify.Infof(i.deps.Out, "%s is already in %s, skipping", i.env.Hosts.Hostname, i.env.Hosts.File)

		return "", nil
	case hosts.Replaced:
		notify.Warningf(i.deps.Out, "%s was mapped to another address in %s, remapping it to %s",
			i.env.Hosts.Hostname, i.env.Hosts.File, i.env.Hosts.Address)
	default:
	}

	return "hosts entry added", nil
}

// printDiagnostics prints resources after a timeout. Failures are reported but not returned.
func (i *Installer) printDiagnostics(ctx context.Context, resources, namespace string) {
	err := i.deps.Manifests.Get(ctx, resources, namespace)
	if err != nil {
		notify.Warningf(i.deps.Out, "failed to print %s: %v", resources, err)
	}
}

func waitPodsActivity(selector, namespace string) string {
	if namespace == "" {
		namespace = "default"
	}

	return fmt.Sprintf("waiting for pod(s) with label '%s' in %s to become ready", selector, namespace)
}

func stageNames(stages []stage) []string {
	names := make([]string, 0, len(stages))
	for _, st := range stages {
		names = append(names, st.name)
	}

	return names
}
