package kindprovisioner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamLoggerWrite(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	logger := &streamLogger{writer: &out}

	logger.Info("Creating cluster \"cluster-local\" ...")
	logger.V(0).Infof(" • %s", "Ensuring node image")
	logger.V(1).Info("debug noise")
	logger.Warn("")
	logger.Errorf("\r ✓ %s\n", "Preparing nodes")

	assert.Equal(t,
		"Creating cluster \"cluster-local\" ...\n • Ensuring node image\n\n\r ✓ Preparing nodes\n",
		out.String(),
	)
	assert.False(t, logger.V(2).Enabled())
	assert.True(t, logger.V(0).Enabled())
}
