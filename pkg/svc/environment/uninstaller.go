package environment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/hosts"
	clusterprovisioner "github.com/kadirariklar/game-2048-for-k8s/pkg/svc/provisioner/cluster"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/notify"
)

// Uninstaller removes everything the Installer created. Each step checks whether
// there is anything to remove, so it can run any number of times.
type Uninstaller struct {
	env  *v1alpha1.Environment
	deps Dependencies
}

// NewUninstaller creates an Uninstaller for env.
func NewUninstaller(env *v1alpha1.Environment, deps Dependencies) *Uninstaller {
	if deps.Out == nil {
		deps.Out = io.Discard
	}

	return &Uninstaller{env: env, deps: deps}
}

// Run executes every uninstall step in order. A failed image removal is only a
// warning; any other failure stops the run with a *StepError.
func (u *Uninstaller) Run(ctx context.Context) error {
	err := runStages(ctx, u.deps.Out, u.deps.Timer, u.stages())
	if err != nil {
		return err
	}

	notify.Successf(u.deps.Out, "2048 Kubernetes uninstall completed")

	return nil
}

// Steps returns the step names in execution order.
func (u *Uninstaller) Steps() []string {
	return stageNames(u.stages())
}

func (u *Uninstaller) stages() []stage {
	env := u.env

	return []stage{
		{
			name: StepPreflight,
			info: StageInfo{
				Title:    "Check tools...",
				Emoji:    "🔍",
				Activity: "looking up " + strings.Join(env.Tools.Uninstall, ", "),
			},
			run: func(ctx context.Context) (string, error) {
				return "all tools installed", u.deps.Tools.Check(ctx, env.Tools.Uninstall...)
			},
		},
		{
			name: StepDeleteCluster,
			info: StageInfo{
				Title:    "Delete cluster...",
				Emoji:    "🗑️",
				Activity: fmt.Sprintf("deleting kind cluster '%s'", env.Cluster.Name),
			},
			run: u.deleteCluster,
		},
		{
			name: StepRemoveImage,
			info: StageInfo{
				Title:    "Remove image...",
				Emoji:    "🧹",
				Activity: fmt.Sprintf("removing image '%s'", env.Image.Name),
			},
			run: u.removeImage,
		},
		{
			name: StepRemoveHostsEntry,
			info: StageInfo{
				Title:    "Remove hosts entry...",
				Emoji:    "📝",
				Activity: fmt.Sprintf("cleaning %s entry for %s", env.Hosts.File, env.Hosts.Hostname),
			},
			run: u.removeHostsEntry,
		},
	}
}

func (u *Uninstaller) deleteCluster(ctx context.Context) (string, error) {
	err := u.deps.Cluster.Delete(ctx, u.env.Cluster.Name)
	if err != nil {
		if errors.Is(err, clusterprovisioner.ErrClusterNotFound) {
			notify.Infof(u.deps.Out, "kind cluster '%s' not found, skipping", u.env.Cluster.Name)

			return "", nil
		}

		return "", err
	}

	return "kind cluster deleted", nil
}

func (u *Uninstaller) removeImage(ctx context.Context) (string, error) {
	exists, err := u.deps.Images.Exists(ctx, u.env.Image.Name)
	if err != nil {
		return "", err
	}

	if !exists {
		notify.Infof(u.deps.Out, "docker image '%s' not found, skipping", u.env.Image.Name)

		return "", nil
	}

	err = u.deps.Images.Remove(ctx, u.env.Image.Name)
	if err != nil {
		notify.Warningf(u.deps.Out, "%v", err)

		return "", nil
	}

	return "docker image removed", nil
}

func (u *Uninstaller) removeHostsEntry(ctx context.Context) (string, error) {
	result, err := u.deps.Hosts.Remove(ctx)
	if err != nil {
		if errors.Is(err, hosts.ErrUnsupportedPlatform) {
			notify.Warningf(u.deps.Out, "%v", err)

			return "", nil
		}

		return "", err
	}

	if result == hosts.NotPresent {
		notify.Infof(u.deps.Out, "no entry for %s in %s, skipping", u.env.Hosts.Hostname, u.env.Hosts.File)

		return "", nil
	}

	return "hosts entry removed", nil
}
