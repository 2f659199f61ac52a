package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHomePath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "home only", path: "~", want: home},
		{name: "home prefix", path: "~/.kube/config", want: filepath.Join(home, ".kube", "config")},
		{name: "absolute", path: "/etc/hosts", want: "/etc/hosts"},
		{name: "relative", path: "resources/kind-config.yaml", want: filepath.Join(wd, "resources", "kind-config.yaml")},
		{name: "tilde inside name is kept", path: "~backup", want: filepath.Join(wd, "~backup")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := fsutil.ExpandHomePath(tc.path)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
