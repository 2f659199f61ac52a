package di_test

import (
	"bytes"
	"testing"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuntime_ProvidesDefaults(t *testing.T) {
	t.Parallel()

	err := di.NewRuntime().Invoke(func(injector di.Injector) error {
		tmr, err := di.ResolveTimer(injector)
		require.NoError(t, err)
		assert.NotNil(t, tmr)

		configFactory, err := di.ResolveConfigManagerFactory(injector)
		require.NoError(t, err)
		assert.NotNil(t, configFactory(&bytes.Buffer{}))

		envFactory, err := di.ResolveEnvironmentFactory(injector)
		require.NoError(t, err)
		assert.NotNil(t, envFactory)

		return nil
	})

	require.NoError(t, err)
}
