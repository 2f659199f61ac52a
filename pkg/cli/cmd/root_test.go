package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/cli/cmd"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/cli/flags"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/notify"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRootTest = errors.New("boom")

func TestMain(m *testing.M) {
	fcolor.NoColor = true

	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func setupRootWithBuffer(out *bytes.Buffer, args ...string) *cobra.Command {
	root := cmd.NewRootCmdWithRuntime(newTestRuntime(fakeFactory{}), "test", "test", "test")
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	return root
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")

	assert.Equal(t, "1.2.3 (Built on 2025-08-17 from Git SHA abc123)", root.Version)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())

	snaps.MatchSnapshot(t, strings.TrimRight(out.String(), "\n"))
}

func TestRootCmdRegistersSubcommands(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"install", "uninstall"})
}

func TestRootCmdShowsHelpWithoutArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	require.NoError(t, setupRootWithBuffer(&out).Execute())

	assert.Contains(t, out.String(), "Usage:\n  game2048 [flags]\n  game2048 [command]")
	assert.Contains(t, out.String(), "--timing")
}

func TestTimingFlagDefaultsFalse(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	require.NotNil(t, root.PersistentFlags().Lookup(flags.TimingFlagName))

	got, err := root.PersistentFlags().GetBool(flags.TimingFlagName)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestTimingFlagEnablesTimingOutput(t *testing.T) {
	t.Parallel()

	timed := func(cmd *cobra.Command, _ []string) error {
		tmr := timer.New()
		tmr.Start()

		notify.SuccessWithTimerf(cmd.OutOrStdout(), flags.MaybeTimer(cmd, tmr), "timed complete")

		return nil
	}

	for _, tc := range []struct {
		args       []string
		wantTiming bool
	}{
		{args: []string{"timed"}},
		{args: []string{"--timing", "timed"}, wantTiming: true},
	} {
		var out bytes.Buffer

		root := setupRootWithBuffer(&out, tc.args...)
		root.AddCommand(&cobra.Command{Use: "timed", RunE: timed})

		require.NoError(t, root.Execute())

		assert.Equal(t, tc.wantTiming, strings.Contains(out.String(), "⏲ current:"), "args %v", tc.args)
	}
}

func TestExecuteReturnsError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := setupRootWithBuffer(&out, "fail")
	root.AddCommand(&cobra.Command{
		Use:  "fail",
		RunE: func(*cobra.Command, []string) error { return errRootTest },
	})

	err := cmd.ExecuteContext(context.Background(), root)

	require.ErrorIs(t, err, errRootTest)
	assert.Contains(t, err.Error(), "command execution failed")
}

func TestExecuteUnknownCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := cmd.ExecuteContext(context.Background(), setupRootWithBuffer(&out, "deploy"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "deploy" for "game2048"`)
}
