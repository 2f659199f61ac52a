package v1alpha1

import "time"

const (
	// DefaultClusterName is the name of the KIND cluster.
	DefaultClusterName = "cluster-local"
	// DefaultKindConfigPath is the kind cluster config file.
	DefaultKindConfigPath = "resources/kind-config.yaml"
	// DefaultImageName is the tag of the application image.
	DefaultImageName = "game-2048-image"
	// DefaultBuildContext is the docker build context, the repository root.
	DefaultBuildContext = ".."
	// DefaultIngressManifestURL is the NGINX ingress controller manifest published for kind.
	DefaultIngressManifestURL = "https://kind.sigs.k8s.io/examples/ingress/deploy-ingress-nginx.yaml"
	// DefaultIngressNamespace is the namespace of the ingress controller.
	DefaultIngressNamespace = "ingress-nginx"
	// DefaultIngressSelector selects the ingress controller pods.
	DefaultIngressSelector = "app.kubernetes.io/component=controller"
	// DefaultManifestsDir holds the application manifests.
	DefaultManifestsDir = "../k8s/manifests"
	// DefaultAppSelector selects the application pods.
	DefaultAppSelector = "app=game-2048"
	// DefaultHostname is the hostname routed by the ingress.
	DefaultHostname = "2048.local"
	// DefaultHostsAddress is the loopback address the hostname resolves to.
	DefaultHostsAddress = "127.0.0.1"
	// DefaultHostsFile is the system hosts file on Linux and macOS.
	DefaultHostsFile = "/etc/hosts"

	// DefaultPollInterval is the fixed sleep between readiness checks.
	DefaultPollInterval = 5 * time.Second
	// DefaultNodeTimeout bounds the wait for cluster nodes.
	DefaultNodeTimeout = 60 * time.Second
	// DefaultPodTimeout bounds the wait for pods.
	DefaultPodTimeout = 300 * time.Second
)

// DefaultInstallTools are the executables the installer requires.
func DefaultInstallTools() []string {
	return []string{"docker", "kind", "kubectl"}
}

// DefaultUninstallTools are the executables the uninstaller requires.
func DefaultUninstallTools() []string {
	return []string{"docker", "kind"}
}

// NewEnvironment returns an Environment populated with the defaults.
func NewEnvironment() *Environment {
	return &Environment{
		Cluster: ClusterSpec{
			Name:       DefaultClusterName,
			ConfigPath: DefaultKindConfigPath,
		},
		Image: ImageSpec{
			Name:         DefaultImageName,
			BuildContext: DefaultBuildContext,
		},
		Ingress: IngressSpec{
			ManifestURL: DefaultIngressManifestURL,
			Namespace:   DefaultIngressNamespace,
			Selector:    DefaultIngressSelector,
		},
		App: AppSpec{
			ManifestsDir: DefaultManifestsDir,
			Selector:     DefaultAppSelector,
		},
		Hosts: HostsSpec{
			Hostname: DefaultHostname,
			Address:  DefaultHostsAddress,
			File:     DefaultHostsFile,
		},
		Readiness: ReadinessSpec{
			Interval:    DefaultPollInterval,
			NodeTimeout: DefaultNodeTimeout,
			PodTimeout:  DefaultPodTimeout,
		},
		Tools: ToolsSpec{
			Install:   DefaultInstallTools(),
			Uninstall: DefaultUninstallTools(),
		},
	}
}
