package environment

import (
	"io"
	"os"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/client/docker"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/client/kubectl"
	kindconfigmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager/kind"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/hosts"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/preflight"
	kindprovisioner "github.com/kadirariklar/game-2048-for-k8s/pkg/svc/provisioner/cluster/kind"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/kind/pkg/apis/config/v1alpha4"
)

// Factory creates the dependencies of the install and uninstall procedures.
type Factory interface {
	InstallDependencies(env *v1alpha1.Environment, out io.Writer, tmr timer.Timer) (Dependencies, error)
	UninstallDependencies(env *v1alpha1.Environment, out io.Writer, tmr timer.Timer) (Dependencies, error)
}

// DefaultFactory wires the procedures to kind, the Docker engine, kubectl and the hosts file.
type DefaultFactory struct{}

// NewDefaultFactory returns a DefaultFactory.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{}
}

// InstallDependencies builds every collaborator without touching the cluster or the disk.
// The kind config file is read when the cluster is created and the Kubernetes
// clientset once the first readiness wait starts, so the tool check always runs first.
func (f *DefaultFactory) InstallDependencies(
	env *v1alpha1.Environment,
	out io.Writer,
	tmr timer.Timer,
) (Dependencies, error) {
	images, err := newImageManager(out)
	if err != nil {
		return Dependencies{}, err
	}

	streams := genericiooptions.IOStreams{In: os.Stdin, Out: out, ErrOut: out}
	kubeconfig, kubeContext := env.Cluster.Kubeconfig, env.Cluster.ContextName()

	cluster := kindprovisioner.NewKindClusterProvisioner(&v1alpha4.Cluster{Name: env.Cluster.Name}, kubeconfig, out, out).
		WithConfigSource(kindconfigmanager.NewConfigManager(env.Cluster.ConfigPath, env.Cluster.Name))

	return Dependencies{
		Tools:     preflight.NewChecker(),
		Cluster:   cluster,
		Images:    images,
		Manifests: kubectl.NewClientForContext(streams, kubeconfig, kubeContext),
		Readiness: readiness.NewWaiter(func() (kubernetes.Interface, error) {
			return k8s.NewClientset(kubeconfig, kubeContext)
		}, env.Readiness.Interval),
		Hosts: newHostsEditor(env),
		Timer: tmr,
		Out:   out,
	}, nil
}

// UninstallDependencies builds the collaborators the uninstaller needs.
// The kind config file is not read; only the cluster name matters for deletion.
func (f *DefaultFactory) UninstallDependencies(
	env *v1alpha1.Environment,
	out io.Writer,
	tmr timer.Timer,
) (Dependencies, error) {
	images, err := newImageManager(out)
	if err != nil {
		return Dependencies{}, err
	}

	kindConfig := &v1alpha4.Cluster{Name: env.Cluster.Name}

	return Dependencies{
		Tools:   preflight.NewChecker(),
		Cluster: kindprovisioner.NewKindClusterProvisioner(kindConfig, env.Cluster.Kubeconfig, out, out),
		Images:  images,
		Hosts:   newHostsEditor(env),
		Timer:   tmr,
		Out:     out,
	}, nil
}

func newImageManager(out io.Writer) (*docker.ImageManager, error) {
	dockerClient, err := docker.GetDockerClient()
	if err != nil {
		return nil, err
	}

	return docker.NewImageManager(dockerClient, out)
}

func newHostsEditor(env *v1alpha1.Environment) *hosts.Editor {
	return hosts.NewEditor(env.Hosts.File, hosts.Entry{
		Address:  env.Hosts.Address,
		Hostname: env.Hosts.Hostname,
	})
}

var _ Factory = (*DefaultFactory)(nil)
