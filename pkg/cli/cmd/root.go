package cmd

import (
	"context"
	"fmt"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/cli/flags"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/cli/ui/errorhandler"
	runtime "github.com/kadirariklar/game-2048-for-k8s/pkg/di"
	"github.com/spf13/cobra"
)

const rootLongDesc = `game2048 stands up the 2048 game on a local kind cluster and tears it down again.

install creates the cluster, builds and loads the game image, deploys the NGINX
ingress controller and the game, and maps 2048.local to 127.0.0.1 in /etc/hosts.
uninstall removes all of it and can be run any number of times.`

// NewRootCmd creates the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(runtime.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command resolving dependencies from runtimeContainer.
func NewRootCmdWithRuntime(runtimeContainer *runtime.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "game2048",
		Short:        "Run the 2048 game on a local kind cluster",
		Long:         rootLongDesc,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		flags.TimingFlagName,
		false,
		"Show per-stage timing output",
	)

	cmd.AddCommand(NewInstallCmd(runtimeContainer))
	cmd.AddCommand(NewUninstallCmd(runtimeContainer))

	return cmd
}

// ExecuteContext runs the root command with ctx, which is cancelled on interrupt by main.
func ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.ExecuteContext(ctx, cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// Help only fails when the output writer does.
	_ = cmd.Help()

	return nil
}
