package flags

import (
	"errors"
	"fmt"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// TimingFlagName is the persistent flag that enables per-stage timing output.
const TimingFlagName = "timing"

// ErrNilCommand is returned when a flag is looked up on a nil command.
var ErrNilCommand = errors.New("command is nil")

// IsTimingEnabled reports whether --timing is set on cmd or inherited from a parent.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	enabled, err := cmd.Flags().GetBool(TimingFlagName)
	if err != nil {
		return false, fmt.Errorf("get %s flag: %w", TimingFlagName, err)
	}

	return enabled, nil
}

// MaybeTimer returns tmr when timing is enabled for cmd, and nil otherwise.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}
