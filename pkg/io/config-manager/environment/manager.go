package configmanager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/fsutil"
	configmanagerinterface "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/envvar"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/notify"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable override, e.g. GAME2048_CLUSTER_NAME.
	EnvPrefix = "GAME2048"
	// ConfigFileEnvVar points at an explicit config file instead of ./game2048.yaml.
	ConfigFileEnvVar = EnvPrefix + "_CONFIG"
	// ConfigName is the config file name searched in the working directory.
	ConfigName = "game2048"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigManager loads the environment configuration with viper.
type ConfigManager struct {
	Viper  *viper.Viper
	Config *v1alpha1.Environment
	Writer io.Writer

	configLoaded bool
}

var _ configmanagerinterface.ConfigManager[v1alpha1.Environment] = (*ConfigManager)(nil)

// NewConfigManager creates a manager reading from the OS filesystem and process environment.
func NewConfigManager(writer io.Writer) *ConfigManager {
	return NewConfigManagerWithFs(writer, afero.NewOsFs())
}

// NewConfigManagerWithFs creates a manager that searches for the config file on fs.
func NewConfigManagerWithFs(writer io.Writer, fs afero.Fs) *ConfigManager {
	if writer == nil {
		writer = io.Discard
	}

	return &ConfigManager{
		Viper:  InitializeViper(fs, os.Getenv(ConfigFileEnvVar)),
		Config: v1alpha1.NewEnvironment(),
		Writer: writer,
	}
}

// InitializeViper returns a viper instance with defaults, config file lookup and
// environment binding configured. An empty configFile searches ./game2048.yaml.
func InitializeViper(fs afero.Fs, configFile string) *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetFs(fs)

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName(ConfigName)
		viperInstance.AddConfigPath(".")
	}

	viperInstance.SetConfigType("yaml")

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	for key, value := range defaults(v1alpha1.NewEnvironment()) {
		viperInstance.SetDefault(key, value)
	}

	return viperInstance
}

// defaults lists every key so AutomaticEnv can resolve it during Unmarshal.
func defaults(env *v1alpha1.Environment) map[string]any {
	return map[string]any{
		"cluster.name":          env.Cluster.Name,
		"cluster.configPath":    env.Cluster.ConfigPath,
		"cluster.kubeconfig":    env.Cluster.Kubeconfig,
		"image.name":            env.Image.Name,
		"image.buildContext":    env.Image.BuildContext,
		"ingress.manifestURL":   env.Ingress.ManifestURL,
		"ingress.namespace":     env.Ingress.Namespace,
		"ingress.selector":      env.Ingress.Selector,
		"app.manifestsDir":      env.App.ManifestsDir,
		"app.namespace":         env.App.Namespace,
		"app.selector":          env.App.Selector,
		"hosts.hostname":        env.Hosts.Hostname,
		"hosts.address":         env.Hosts.Address,
		"hosts.file":            env.Hosts.File,
		"readiness.interval":    env.Readiness.Interval,
		"readiness.nodeTimeout": env.Readiness.NodeTimeout,
		"readiness.podTimeout":  env.Readiness.PodTimeout,
		"tools.install":         env.Tools.Install,
		"tools.uninstall":       env.Tools.Uninstall,
	}
}

// Load resolves the configuration. Priority: defaults < config file < environment variables.
// The result is cached; later calls return the same value.
func (m *ConfigManager) Load(opts configmanagerinterface.LoadOptions) (*v1alpha1.Environment, error) {
	if !opts.Silent {
		m.notifyLoadingStart()
	}

	if m.configLoaded {
		if !opts.Silent {
			m.notifyConfigReused()
		}

		return m.Config, nil
	}

	if !opts.Silent {
		m.notifyLoadingConfig()
	}

	if !opts.IgnoreConfigFile {
		err := m.readConfig(opts.Silent)
		if err != nil {
			return nil, err
		}
	}

	err := m.unmarshal()
	if err != nil {
		return nil, err
	}

	err = expandPaths(m.Config)
	if err != nil {
		return nil, err
	}

	err = m.Config.Validate()
	if err != nil {
		if !opts.Silent {
			notify.Errorf(m.Writer, "%v", err)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !opts.Silent {
		m.notifyLoadingComplete(opts.Timer)
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig(silent bool) error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !silent {
			m.notifyUsingDefaults()
		}

		return nil
	}

	if !silent {
		m.notifyConfigFound()
	}

	return nil
}

func (m *ConfigManager) unmarshal() error {
	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = decodeHook()
	}

	err := m.Viper.Unmarshal(m.Config, decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return nil
}

func expandPlaceholders(env *v1alpha1.Environment) {
	envvar.ExpandAll(
		&env.Cluster.Name,
		&env.Cluster.ConfigPath,
		&env.Cluster.Kubeconfig,
		&env.Image.Name,
		&env.Image.BuildContext,
		&env.Ingress.ManifestURL,
		&env.Ingress.Namespace,
		&env.Ingress.Selector,
		&env.App.ManifestsDir,
		&env.App.Namespace,
		&env.App.Selector,
		&env.Hosts.Hostname,
		&env.Hosts.Address,
		&env.Hosts.File,
	)
}

// expandPaths expands ${VAR} placeholders in every string and ~ in the kubeconfig path.
func expandPaths(env *v1alpha1.Environment) error {
	expandPlaceholders(env)

	if env.Cluster.Kubeconfig == "" {
		return nil
	}

	kubeconfig, err := fsutil.ExpandHomePath(env.Cluster.Kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to expand kubeconfig path: %w", err)
	}

	env.Cluster.Kubeconfig = kubeconfig

	return nil
}

func (m *ConfigManager) notifyLoadingStart() {
	notify.WriteMessage(notify.Message{
		Type:    notify.TitleType,
		Content: "Load config...",
		Emoji:   "⏳",
		Writer:  m.Writer,
	})
}

func (m *ConfigManager) notifyConfigReused() {
	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "config already loaded, reusing existing config",
		Writer:  m.Writer,
	})
}

func (m *ConfigManager) notifyLoadingConfig() {
	notify.WriteMessage(notify.Message{
		Type:    notify.ActivityType,
		Content: "loading game2048 config",
		Writer:  m.Writer,
	})
}

func (m *ConfigManager) notifyUsingDefaults() {
	notify.WriteMessage(notify.Message{
		Type:    notify.ActivityType,
		Content: "using default config",
		Writer:  m.Writer,
	})
}

func (m *ConfigManager) notifyConfigFound() {
	notify.WriteMessage(notify.Message{
		Type:    notify.ActivityType,
		Content: "'%s' found",
		Args:    []any{m.Viper.ConfigFileUsed()},
		Writer:  m.Writer,
	})
}

func (m *ConfigManager) notifyLoadingComplete(tmr timer.Timer) {
	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "config loaded",
		Timer:   tmr,
		Writer:  m.Writer,
	})
}
