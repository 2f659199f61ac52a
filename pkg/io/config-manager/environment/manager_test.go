package configmanager_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	fcolor "github.com/fatih/color"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	configmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	envconfigmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager/environment"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	fcolor.NoColor = true

	os.Exit(m.Run())
}

// clearEnv pins the variables a developer shell might set so the test sees defaults.
func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv(envconfigmanager.ConfigFileEnvVar, "")
	t.Setenv("GAME2048_CLUSTER_NAME", "")
}

func writeWorkingDirConfig(t *testing.T, fs afero.Fs, content string) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	path := filepath.Join(wd, "game2048.yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer

	manager := envconfigmanager.NewConfigManagerWithFs(&out, afero.NewMemMapFs())

	env, err := manager.Load(configmanager.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.NewEnvironment(), env)
	assert.Equal(t,
		"⏳ Load config...\n► loading game2048 config\n► using default config\n✔ config loaded\n",
		out.String())
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	fs := afero.NewMemMapFs()
	path := writeWorkingDirConfig(t, fs, `
cluster:
  name: demo
readiness:
  podTimeout: 2m
tools:
  install: docker, kind
`)

	var out bytes.Buffer

	manager := envconfigmanager.NewConfigManagerWithFs(&out, fs)

	env, err := manager.Load(configmanager.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "demo", env.Cluster.Name)
	assert.Equal(t, 2*time.Minute, env.Readiness.PodTimeout)
	assert.Equal(t, []string{"docker", "kind"}, env.Tools.Install)
	assert.Equal(t, v1alpha1.DefaultImageName, env.Image.Name)
	assert.Contains(t, out.String(), "► '"+path+"' found")
}

func TestLoad_EnvironmentOverridesConfigFile(t *testing.T) {
	clearEnv(t)

	fs := afero.NewMemMapFs()
	writeWorkingDirConfig(t, fs, "cluster:\n  name: from-file\n")

	t.Setenv("GAME2048_CLUSTER_NAME", "from-env")
	t.Setenv("GAME2048_READINESS_NODETIMEOUT", "90s")
	t.Setenv("GAME2048_TOOLS_UNINSTALL", "kind")

	env, err := envconfigmanager.NewConfigManagerWithFs(nil, fs).Load(configmanager.LoadOptions{Silent: true})
	require.NoError(t, err)

	assert.Equal(t, "from-env", env.Cluster.Name)
	assert.Equal(t, 90*time.Second, env.Readiness.NodeTimeout)
	assert.Equal(t, []string{"kind"}, env.Tools.Uninstall)
	assert.Equal(t, "kind-from-env", env.Cluster.ContextName())
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	clearEnv(t)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/game2048/custom.yaml", []byte("image:\n  name: custom-image\n"), 0o600))

	t.Setenv(envconfigmanager.ConfigFileEnvVar, "/etc/game2048/custom.yaml")

	env, err := envconfigmanager.NewConfigManagerWithFs(nil, fs).Load(configmanager.LoadOptions{Silent: true})
	require.NoError(t, err)

	assert.Equal(t, "custom-image", env.Image.Name)
}

func TestLoad_MissingExplicitConfigFileFails(t *testing.T) {
	clearEnv(t)

	t.Setenv(envconfigmanager.ConfigFileEnvVar, "/does/not/exist.yaml")

	_, err := envconfigmanager.NewConfigManagerWithFs(nil, afero.NewMemMapFs()).
		Load(configmanager.LoadOptions{Silent: true})

	require.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_IgnoreConfigFile(t *testing.T) {
	clearEnv(t)

	fs := afero.NewMemMapFs()
	writeWorkingDirConfig(t, fs, "cluster:\n  name: from-file\n")

	manager := envconfigmanager.NewConfigManagerWithFs(nil, fs)

	env, err := manager.Load(configmanager.LoadOptions{Silent: true, IgnoreConfigFile: true})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.DefaultClusterName, env.Cluster.Name)
}

func TestLoad_ExpandsPlaceholders(t *testing.T) {
	clearEnv(t)

	t.Setenv("DEMO_NAMESPACE", "games")
	t.Setenv("GAME2048_APP_NAMESPACE", "${DEMO_NAMESPACE}")
	t.Setenv("GAME2048_CLUSTER_KUBECONFIG", "${DEMO_KUBECONFIG:-~/.kube/demo}")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	env, err := envconfigmanager.NewConfigManagerWithFs(nil, afero.NewMemMapFs()).
		Load(configmanager.LoadOptions{Silent: true})
	require.NoError(t, err)

	assert.Equal(t, "games", env.App.Namespace)
	assert.Equal(t, filepath.Join(home, ".kube", "demo"), env.Cluster.Kubeconfig)
}

func TestLoad_InvalidConfig(t *testing.T) {
	clearEnv(t)

	t.Setenv("GAME2048_READINESS_INTERVAL", "0s")

	var out bytes.Buffer

	_, err := envconfigmanager.NewConfigManagerWithFs(&out, afero.NewMemMapFs()).
		Load(configmanager.LoadOptions{})

	require.ErrorIs(t, err, envconfigmanager.ErrInvalidConfig)
	require.ErrorIs(t, err, v1alpha1.ErrInvalidDuration)
	assert.Contains(t, out.String(), "✗ ")
	assert.NotContains(t, out.String(), "config loaded")
}

func TestLoad_ReusesLoadedConfig(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer

	manager := envconfigmanager.NewConfigManagerWithFs(&out, afero.NewMemMapFs())

	first, err := manager.Load(configmanager.LoadOptions{Silent: true})
	require.NoError(t, err)

	second, err := manager.Load(configmanager.LoadOptions{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "⏳ Load config...\n✔ config already loaded, reusing existing config\n", out.String())
}
