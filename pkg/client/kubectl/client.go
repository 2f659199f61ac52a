// Package kubectl runs kubectl's own apply and get commands in-process.
package kubectl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/runner"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/kubectl/pkg/cmd/apply"
	"k8s.io/kubectl/pkg/cmd/get"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
)

const baseName = "kubectl"

// ErrCommandFailed is returned when a kubectl command fails.
var ErrCommandFailed = errors.New("kubectl command failed")

// kubectl reports failures through a process-wide fatal handler, so commands run one at a time.
var fatalMu sync.Mutex

type fatalExit struct {
	msg  string
	code int
}

// Client builds kubectl commands bound to one kubeconfig and context.
type Client struct {
	ioStreams  genericiooptions.IOStreams
	kubeconfig string
	context    string
	runner     runner.CommandRunner
}

// NewClientForContext creates a client targeting kubeconfig and context.
// Empty values fall back to kubectl's defaults.
func NewClientForContext(ioStreams genericiooptions.IOStreams, kubeconfig, context string) *Client {
	return &Client{
		ioStreams:  ioStreams,
		kubeconfig: kubeconfig,
		context:    context,
		runner:     runner.NewCobraCommandRunner(ioStreams.Out, ioStreams.ErrOut),
	}
}

// CreateApplyCommand creates kubectl's apply command.
func (c *Client) CreateApplyCommand(kubeconfigPath, context string) *cobra.Command {
	return apply.NewCmdApply(baseName, newFactory(kubeconfigPath, context), c.ioStreams)
}

// CreateGetCommand creates kubectl's get command.
func (c *Client) CreateGetCommand(kubeconfigPath, context string) *cobra.Command {
	return get.NewCmdGet(baseName, newFactory(kubeconfigPath, context), c.ioStreams)
}

// Apply runs `kubectl apply -f source`. source may be a URL, a file or a directory.
func (c *Client) Apply(ctx context.Context, source string) error {
	cmd := c.CreateApplyCommand(c.kubeconfig, c.context)

	err := c.execute(ctx, cmd, []string{"-f", source})
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", source, err)
	}

	return nil
}

// Get runs `kubectl get <resources>` and prints the table to the client's output.
// An empty namespace uses the context's namespace.
func (c *Client) Get(ctx context.Context, resources string, namespace string) error {
	args := []string{resources}
	if namespace != "" {
		args = append(args, "--namespace", namespace)
	}

	cmd := c.CreateGetCommand(c.kubeconfig, c.context)

	err := c.execute(ctx, cmd, args)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", resources, err)
	}

	return nil
}

func (c *Client) execute(ctx context.Context, cmd *cobra.Command, args []string) (err error) {
	fatalMu.Lock()
	defer fatalMu.Unlock()

	cmdutil.BehaviorOnFatal(func(msg string, code int) {
		panic(fatalExit{msg: msg, code: code})
	})
	defer cmdutil.DefaultBehaviorOnFatal()

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		exit, ok := recovered.(fatalExit)
		if !ok {
			panic(recovered)
		}

		err = exit.asError()
	}()

	_, err = c.runner.Run(ctx, cmd, args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}

	return nil
}

func (e fatalExit) asError() error {
	msg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(e.msg), "error:"))
	if msg == "" {
		return fmt.Errorf("%w: exit code %d", ErrCommandFailed, e.code)
	}

	return fmt.Errorf("%w: %s", ErrCommandFailed, msg)
}

func newFactory(kubeconfigPath, context string) cmdutil.Factory {
	configFlags := genericclioptions.NewConfigFlags(true)

	if kubeconfigPath != "" {
		configFlags.KubeConfig = &kubeconfigPath
	}

	if context != "" {
		configFlags.Context = &context
	}

	return cmdutil.NewFactory(configFlags)
}
