// Package v1alpha1 defines the configuration of the local 2048 demo environment.
package v1alpha1

import "time"

// Environment describes everything the install and uninstall procedures act on.
type Environment struct {
	Cluster   ClusterSpec   `mapstructure:"cluster"`
	Image     ImageSpec     `mapstructure:"image"`
	Ingress   IngressSpec   `mapstructure:"ingress"`
	App       AppSpec       `mapstructure:"app"`
	Hosts     HostsSpec     `mapstructure:"hosts"`
	Readiness ReadinessSpec `mapstructure:"readiness"`
	Tools     ToolsSpec     `mapstructure:"tools"`
}

// ClusterSpec defines the KIND cluster.
type ClusterSpec struct {
	Name string `mapstructure:"name"`
	// ConfigPath is the kind cluster config file passed to kind create cluster.
	ConfigPath string `mapstructure:"configPath"`
	// Kubeconfig is the kubeconfig kind writes to. Empty means kubectl's default resolution.
	Kubeconfig string `mapstructure:"kubeconfig"`
}

// ImageSpec defines the application image built from the repository.
type ImageSpec struct {
	Name         string `mapstructure:"name"`
	BuildContext string `mapstructure:"buildContext"`
}

// IngressSpec defines the ingress controller deployment.
type IngressSpec struct {
	ManifestURL string `mapstructure:"manifestURL"`
	Namespace   string `mapstructure:"namespace"`
	Selector    string `mapstructure:"selector"`
}

// AppSpec defines the application deployment.
type AppSpec struct {
	ManifestsDir string `mapstructure:"manifestsDir"`
	Namespace    string `mapstructure:"namespace"`
	Selector     string `mapstructure:"selector"`
}

// HostsSpec defines the loopback hosts entry.
type HostsSpec struct {
	Hostname string `mapstructure:"hostname"`
	Address  string `mapstructure:"address"`
	File     string `mapstructure:"file"`
}

// ReadinessSpec defines the polling cadence and budgets.
type ReadinessSpec struct {
	Interval    time.Duration `mapstructure:"interval"`
	NodeTimeout time.Duration `mapstructure:"nodeTimeout"`
	PodTimeout  time.Duration `mapstructure:"podTimeout"`
}

// ToolsSpec lists the executables that must resolve on PATH before each procedure.
type ToolsSpec struct {
	Install   []string `mapstructure:"install"`
	Uninstall []string `mapstructure:"uninstall"`
}

// ContextName returns the kubeconfig context kind creates for the cluster.
func (c ClusterSpec) ContextName() string {
	return "kind-" + c.Name
}

// URL returns the address the application is served on.
func (h HostsSpec) URL() string {
	return "http://" + h.Hostname
}
