package readiness

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// CheckFunc reports whether the awaited condition holds. A non-nil error aborts polling.
type CheckFunc func(ctx context.Context) (bool, error)

// PollForReadiness calls check immediately and then every interval until it returns
// true, returns an error, or deadline elapses. Expiry yields ErrTimeoutExceeded.
func PollForReadiness(
	ctx context.Context,
	interval time.Duration,
	deadline time.Duration,
	check CheckFunc,
) error {
	err := wait.PollUntilContextTimeout(ctx, interval, deadline, true, wait.ConditionWithContextFunc(check))
	if err == nil {
		return nil
	}

	if wait.Interrupted(err) {
		if ctx.Err() != nil {
			return fmt.Errorf("readiness polling cancelled: %w", ctx.Err())
		}

		return fmt.Errorf("%w after %s", ErrTimeoutExceeded, deadline)
	}

	return fmt.Errorf("failed to poll for readiness: %w", err)
}
