package readiness_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCheckBroken = errors.New("check broken")

func TestPollForReadiness_ImmediateSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	err := readiness.PollForReadiness(context.Background(), time.Hour, time.Second,
		func(context.Context) (bool, error) {
			calls++

			return true, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPollForReadiness_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	err := readiness.PollForReadiness(context.Background(), 5*time.Millisecond, time.Second,
		func(context.Context) (bool, error) {
			calls++

			return calls == 3, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPollForReadiness_Timeout(t *testing.T) {
	t.Parallel()

	err := readiness.PollForReadiness(context.Background(), 5*time.Millisecond, 30*time.Millisecond,
		func(context.Context) (bool, error) { return false, nil })

	require.ErrorIs(t, err, readiness.ErrTimeoutExceeded)
}

func TestPollForReadiness_CheckError(t *testing.T) {
	t.Parallel()

	err := readiness.PollForReadiness(context.Background(), 5*time.Millisecond, time.Second,
		func(context.Context) (bool, error) { return false, errCheckBroken })

	require.ErrorIs(t, err, errCheckBroken)
	assert.Contains(t, err.Error(), "failed to poll for readiness")
}

func TestPollForReadiness_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := readiness.PollForReadiness(ctx, 5*time.Millisecond, time.Second,
		func(context.Context) (bool, error) { return false, nil })

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, readiness.ErrTimeoutExceeded)
}
