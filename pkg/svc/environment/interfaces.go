package environment

import (
	"context"
	"io"
	"time"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/hosts"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
)

// ToolChecker verifies that required executables are installed.
type ToolChecker interface {
	Check(ctx context.Context, tools ...string) error
}

// ClusterProvisioner manages the kind cluster.
type ClusterProvisioner interface {
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	LoadImage(ctx context.Context, image, name string) error
}

// ImageBuilder manages the application image in the local Docker engine.
type ImageBuilder interface {
	Build(ctx context.Context, contextDir, tag string) error
	Exists(ctx context.Context, tag string) (bool, error)
	Remove(ctx context.Context, tag string) error
}

// ManifestClient applies manifests to and prints resources from the cluster.
type ManifestClient interface {
	Apply(ctx context.Context, source string) error
	Get(ctx context.Context, resources string, namespace string) error
}

// ReadinessWaiter waits for nodes and pods to become ready.
type ReadinessWaiter interface {
	WaitForNodes(ctx context.Context, timeout time.Duration) error
	WaitForPods(
		ctx context.Context,
		namespace string,
		selector string,
		timeout time.Duration,
		progress readiness.ProgressFunc,
	) error
	DiagnosePods(ctx context.Context, namespace, selector string) string
}

// HostsEditor adds and removes the hosts file entry.
type HostsEditor interface {
	Add(ctx context.Context) (hosts.Result, error)
	Remove(ctx context.Context) (hosts.Result, error)
}

// Dependencies are the collaborators of an Installer or Uninstaller.
// The Uninstaller does not use Manifests or Readiness.
type Dependencies struct {
	Tools     ToolChecker
	Cluster   ClusterProvisioner
	Images    ImageBuilder
	Manifests ManifestClient
	Readiness ReadinessWaiter
	Hosts     HostsEditor
	// Timer adds stage timings to success messages when set.
	Timer timer.Timer
	// Out receives progress messages.
	Out io.Writer
}
