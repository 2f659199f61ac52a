// Package kind loads the kind cluster configuration file.
package kind

import (
	"errors"
	"fmt"
	"strings"

	configmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	"github.com/spf13/afero"
	kindv1alpha4 "sigs.k8s.io/kind/pkg/apis/config/v1alpha4"
	"sigs.k8s.io/yaml"
)

const (
	// Kind is the expected kind of a kind cluster configuration.
	Kind = "Cluster"
	// APIVersion is the expected apiVersion of a kind cluster configuration.
	APIVersion = "kind.x-k8s.io/v1alpha4"
)

var (
	// ErrConfigRead is returned when the kind config file cannot be read.
	ErrConfigRead = errors.New("failed to read kind config")
	// ErrUnsupportedConfig is returned when the file is not a v1alpha4 kind Cluster.
	ErrUnsupportedConfig = errors.New("unsupported kind config")
)

// ConfigManager loads a kind v1alpha4 cluster configuration from disk and pins its name.
type ConfigManager struct {
	fs          afero.Fs
	configPath  string
	clusterName string
	config      *kindv1alpha4.Cluster
}

var _ configmanager.ConfigManager[kindv1alpha4.Cluster] = (*ConfigManager)(nil)

// NewConfigManager returns a manager reading configPath from the OS filesystem.
func NewConfigManager(configPath, clusterName string) *ConfigManager {
	return NewConfigManagerWithFs(afero.NewOsFs(), configPath, clusterName)
}

// NewConfigManagerWithFs returns a manager reading configPath from fs.
func NewConfigManagerWithFs(fs afero.Fs, configPath, clusterName string) *ConfigManager {
	return &ConfigManager{fs: fs, configPath: configPath, clusterName: clusterName}
}

// Load reads, defaults and names the kind configuration. The result is cached.
func (m *ConfigManager) Load(_ configmanager.LoadOptions) (*kindv1alpha4.Cluster, error) {
	if m.config != nil {
		return m.config, nil
	}

	data, err := afero.ReadFile(m.fs, m.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrConfigRead, m.configPath, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.configPath, err)
	}

	if name := strings.TrimSpace(m.clusterName); name != "" {
		config.Name = name
	}

	m.config = config

	return config, nil
}

// Parse decodes a kind cluster configuration and applies kind's defaults.
// Missing kind and apiVersion fields are filled in.
func Parse(data []byte) (*kindv1alpha4.Cluster, error) {
	config := &kindv1alpha4.Cluster{}

	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kind config: %w", err)
	}

	if config.Kind == "" {
		config.Kind = Kind
	}

	if config.APIVersion == "" {
		config.APIVersion = APIVersion
	}

	if config.Kind != Kind || config.APIVersion != APIVersion {
		return nil, fmt.Errorf(
			"%w: got %s/%s, want %s/%s",
			ErrUnsupportedConfig, config.APIVersion, config.Kind, APIVersion, Kind,
		)
	}

	kindv1alpha4.SetDefaultsCluster(config)

	return config, nil
}

// Marshal encodes a kind cluster configuration as YAML.
func Marshal(config *kindv1alpha4.Cluster) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal kind config: %w", err)
	}

	return data, nil
}
