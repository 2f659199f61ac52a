package cmd

import (
	"fmt"
	"io"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/cli/flags"
	runtime "github.com/kadirariklar/game-2048-for-k8s/pkg/di"
	configmanager "github.com/kadirariklar/game-2048-for-k8s/pkg/io/config-manager"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/svc/environment"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/notify"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// procedureRun is what install and uninstall share before their first step.
type procedureRun struct {
	env     *v1alpha1.Environment
	factory environment.Factory
	out     io.Writer
	// timer is nil unless --timing is set.
	timer timer.Timer
}

func prepareRun(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) (procedureRun, error) {
	tmr.Start()

	stageWriter := notify.NewStageSeparatingWriter(cmd.OutOrStdout())
	cmd.SetOut(stageWriter)

	outputTimer := flags.MaybeTimer(cmd, tmr)

	configFactory, err := runtime.ResolveConfigManagerFactory(injector)
	if err != nil {
		return procedureRun{}, err
	}

	env, err := configFactory(stageWriter).Load(configmanager.LoadOptions{Timer: outputTimer})
	if err != nil {
		return procedureRun{}, fmt.Errorf("failed to load config: %w", err)
	}

	factory, err := runtime.ResolveEnvironmentFactory(injector)
	if err != nil {
		return procedureRun{}, err
	}

	return procedureRun{env: env, factory: factory, out: stageWriter, timer: outputTimer}, nil
}
