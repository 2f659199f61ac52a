// Package kindprovisioner creates, deletes and loads images into kind clusters by
// running kind's own cobra commands in-process.
package kindprovisioner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/fsutil"
	configmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	kindconfig "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager/kind"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/runner"
	"sigs.k8s.io/kind/pkg/apis/config/v1alpha4"
	kindcmd "sigs.k8s.io/kind/pkg/cmd"
	createcluster "sigs.k8s.io/kind/pkg/cmd/kind/create/cluster"
	deletecluster "sigs.k8s.io/kind/pkg/cmd/kind/delete/cluster"
	getclusters "sigs.k8s.io/kind/pkg/cmd/kind/get/clusters"
	loadimage "sigs.k8s.io/kind/pkg/cmd/kind/load/docker-image"
)

const noKindClustersMsg = "No kind clusters found."

// KindClusterProvisioner manages kind clusters described by a kind v1alpha4 config.
type KindClusterProvisioner struct {
	kubeConfig string
	kindConfig *v1alpha4.Cluster
	// source, when set, supplies the kind config on first Create.
	source     configmanager.ConfigManager[v1alpha4.Cluster]
	runner     runner.CommandRunner
	out        io.Writer
	errOut     io.Writer
}

// NewKindClusterProvisioner constructs a provisioner that streams kind's output to out and errOut.
func NewKindClusterProvisioner(
	kindConfig *v1alpha4.Cluster,
	kubeConfig string,
	out io.Writer,
	errOut io.Writer,
) *KindClusterProvisioner {
	return NewKindClusterProvisionerWithRunner(
		kindConfig,
		kubeConfig,
		runner.NewCobraCommandRunner(out, errOut),
		out,
		errOut,
	)
}

// NewKindClusterProvisionerWithRunner constructs a provisioner with an explicit command runner.
func NewKindClusterProvisionerWithRunner(
	kindConfig *v1alpha4.Cluster,
	kubeConfig string,
	runner runner.CommandRunner,
	out io.Writer,
	errOut io.Writer,
) *KindClusterProvisioner {
	if out == nil {
		out = os.Stdout
	}

	if errOut == nil {
		errOut = os.Stderr
	}

	return &KindClusterProvisioner{
		kubeConfig: kubeConfig,
		kindConfig: kindConfig,
		runner:     runner,
		out:        out,
		errOut:     errOut,
	}
}

// WithConfigSource defers reading the kind config until a cluster is created.
// Delete and LoadImage only need the name already held by the provisioner.
func (k *KindClusterProvisioner) WithConfigSource(
	source configmanager.ConfigManager[v1alpha4.Cluster],
) *KindClusterProvisioner {
	k.source = source

	return k
}

// Create creates a kind cluster. An empty name falls back to the config's name.
func (k *KindClusterProvisioner) Create(ctx context.Context, name string) error {
	config, err := k.config()
	if err != nil {
		return err
	}

	target := setName(name, config.Name)

	// kind's create command only accepts the config as a file
	tmpFile, err := os.CreateTemp("", "kind-config-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	defer func() { _ = os.Remove(tmpFile.Name()) }()

	configYAML, err := kindconfig.Marshal(config)
	if err != nil {
		_ = tmpFile.Close()

		return fmt.Errorf("marshal kind config: %w", err)
	}

	_, err = tmpFile.Write(configYAML)
	if closeErr := tmpFile.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write temp config file: %w", err)
	}

	args := []string{"--name", target, "--config", tmpFile.Name()}

	args, err = k.appendKubeconfig(args)
	if err != nil {
		return err
	}

	cmd := createcluster.NewCommand(k.logger(), k.streams())

	_, err = k.runner.Run(ctx, cmd, args)
	if err != nil {
		return fmt.Errorf("failed to create kind cluster: %w", err)
	}

	return nil
}

// Delete deletes a kind cluster.
// Returns ErrClusterNotFound if the cluster does not exist.
func (k *KindClusterProvisioner) Delete(ctx context.Context, name string) error {
	target := setName(name, k.kindConfig.Name)

	exists, err := k.Exists(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to check cluster existence: %w", err)
	}

	if !exists {
		return fmt.Errorf("%w: %s", ErrClusterNotFound, target)
	}

	args, err := k.appendKubeconfig([]string{"--name", target})
	if err != nil {
		return err
	}

	cmd := deletecluster.NewCommand(k.logger(), k.streams())

	_, err = k.runner.Run(ctx, cmd, args)
	if err != nil {
		return fmt.Errorf("failed to delete kind cluster: %w", err)
	}

	return nil
}

// List returns the names of all kind clusters.
func (k *KindClusterProvisioner) List(ctx context.Context) ([]string, error) {
	var outBuf bytes.Buffer

	// get clusters prints names straight to streams.Out
	cmd := getclusters.NewCommand(&streamLogger{writer: &outBuf}, kindcmd.IOStreams{
		Out:    &outBuf,
		ErrOut: io.Discard,
	})

	result, err := k.runner.Run(ctx, cmd, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to list kind clusters: %w", err)
	}

	output := outBuf.Bytes()
	if len(output) == 0 {
		output = []byte(result.Stdout)
	}

	var clusters []string

	for line := range bytes.SplitSeq(output, []byte("\n")) {
		name := string(bytes.TrimSpace(line))
		if name != "" && name != noKindClustersMsg {
			clusters = append(clusters, name)
		}
	}

	return clusters, nil
}

// Exists reports whether kind lists the cluster.
func (k *KindClusterProvisioner) Exists(ctx context.Context, name string) (bool, error) {
	clusters, err := k.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list kind clusters: %w", err)
	}

	return slices.Contains(clusters, setName(name, k.kindConfig.Name)), nil
}

// LoadImage copies a local docker image onto every node of the cluster.
func (k *KindClusterProvisioner) LoadImage(ctx context.Context, image, name string) error {
	target := setName(name, k.kindConfig.Name)

	cmd := loadimage.NewCommand(k.logger(), k.streams())

	_, err := k.runner.Run(ctx, cmd, []string{image, "--name", target})
	if err != nil {
		return fmt.Errorf("failed to load image %s into kind cluster %s: %w", image, target, err)
	}

	return nil
}

// --- internals ---

func (k *KindClusterProvisioner) config() (*v1alpha4.Cluster, error) {
	if k.source == nil {
		return k.kindConfig, nil
	}

	config, err := k.source.Load(configmanager.LoadOptions{Silent: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load kind config: %w", err)
	}

	k.kindConfig = config

	return config, nil
}

func (k *KindClusterProvisioner) logger() *streamLogger {
	return &streamLogger{writer: k.out}
}

func (k *KindClusterProvisioner) streams() kindcmd.IOStreams {
	return kindcmd.IOStreams{Out: k.out, ErrOut: k.errOut}
}

func (k *KindClusterProvisioner) appendKubeconfig(args []string) ([]string, error) {
	if k.kubeConfig == "" {
		return args, nil
	}

	kubeconfigPath, err := fsutil.ExpandHomePath(k.kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to expand kubeconfig path: %w", err)
	}

	return append(args, "--kubeconfig", kubeconfigPath), nil
}

func setName(name string, kindConfigName string) string {
	target := name
	if target == "" {
		target = kindConfigName
	}

	return target
}
