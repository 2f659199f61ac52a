package environment

import (
	"context"
	"io"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/notify"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
)

// StageInfo contains display information for a stage.
// Blank lines between stages come from the StageSeparatingWriter around Out.
type StageInfo struct {
	Title    string
	Emoji    string
	Activity string
}

// stage is one step of a procedure. run returns the success message to print,
// or an empty string when it already reported its outcome.
type stage struct {
	name string
	info StageInfo
	run  func(ctx context.Context) (string, error)
}

func runStages(ctx context.Context, out io.Writer, tmr timer.Timer, stages []stage) error {
	for _, st := range stages {
		err := runStage(ctx, out, tmr, st)
		if err != nil {
			return err
		}
	}

	return nil
}

func runStage(ctx context.Context, out io.Writer, tmr timer.Timer, st stage) error {
	if tmr != nil {
		tmr.NewStage()
	}

	notify.Titlef(out, st.info.Emoji, "%s", st.info.Title)

	if st.info.Activity != "" {
		notify.Activityf(out, "%s", st.info.Activity)
	}

	success, err := st.run(ctx)
	if err != nil {
		return &StepError{Step: st.name, Err: err}
	}

	if success != "" {
		notify.SuccessWithTimerf(out, tmr, "%s", success)
	}

	return nil
}
