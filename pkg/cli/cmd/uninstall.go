package cmd

import (
	"fmt"

	runtime "github.com/kadirariklar/game-2048-for-k8s/pkg/di"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/spf13/cobra"
)

const uninstallLongDesc = `Remove the 2048 game and its kind cluster.

Deletes the kind cluster, removes the game image and drops the 2048.local entry
from /etc/hosts. Anything already gone is skipped, so uninstall can be run again safely.`

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:           "uninstall",
		Short:         "Remove the 2048 game and its kind cluster",
		Long:          uninstallLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runtime.RunEWithRuntime(runtimeContainer, runtime.WithTimer(handleUninstallRunE)),
	}
}

func handleUninstallRunE(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
	run, err := prepareRun(cmd, injector, tmr)
	if err != nil {
		return err
	}

	deps, err := run.factory.UninstallDependencies(run.env, run.out, run.timer)
	if err != nil {
		return fmt.Errorf("failed to prepare uninstall: %w", err)
	}

	err = environment.NewUninstaller(run.env, deps).Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("uninstall failed: %w", err)
	}

	return nil
}
