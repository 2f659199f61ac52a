package cmd

import (
	"fmt"

	runtime "github.com/kadirariklar/game-2048-for-k8s/pkg/di"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/spf13/cobra"
)

const installLongDesc = `Install the 2048 game on a local kind cluster.

The steps run in order and the first failure stops the install:
  1. Check that docker, kind and kubectl are installed
  2. Create the kind cluster and wait for its nodes
  3. Build the game image and load it into the cluster
  4. Deploy the NGINX ingress controller and wait for it
  5. Add the 2048.local entry to /etc/hosts
  6. Deploy the game and wait for its pods
  7. Print the deployed pods, services and ingresses

Settings are read from game2048.yaml (or $GAME2048_CONFIG) and GAME2048_* environment
variables, e.g. GAME2048_CLUSTER_NAME.`

// NewInstallCmd creates the install command.
func NewInstallCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:           "install",
		Short:         "Install the 2048 game on a local kind cluster",
		Long:          installLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runtime.RunEWithRuntime(runtimeContainer, runtime.WithTimer(handleInstallRunE)),
	}
}

func handleInstallRunE(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
	run, err := prepareRun(cmd, injector, tmr)
	if err != nil {
		return err
	}

	deps, err := run.factory.InstallDependencies(run.env, run.out, run.timer)
	if err != nil {
		return fmt.Errorf("failed to prepare install: %w", err)
	}

	err = environment.NewInstaller(run.env, deps).Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	return nil
}
