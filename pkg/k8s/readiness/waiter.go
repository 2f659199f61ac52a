package readiness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s"
	"k8s.io/client-go/kubernetes"
)

// ClientsetFactory creates the clientset used by a Waiter.
type ClientsetFactory func() (kubernetes.Interface, error)

// Waiter waits for cluster readiness through a clientset that is created on first use,
// so it can be constructed before the cluster (and its kubeconfig) exists.
type Waiter struct {
	factory  ClientsetFactory
	interval time.Duration

	once      sync.Once
	clientset kubernetes.Interface
	err       error
}

// NewWaiter returns a Waiter polling every interval.
func NewWaiter(factory ClientsetFactory, interval time.Duration) *Waiter {
	return &Waiter{factory: factory, interval: interval}
}

// WaitForNodes waits until every node is Ready or timeout elapses.
func (w *Waiter) WaitForNodes(ctx context.Context, timeout time.Duration) error {
	clientset, err := w.client()
	if err != nil {
		return err
	}

	return WaitForNodesReady(ctx, clientset, w.interval, timeout)
}

// WaitForPods waits until the pods matching selector in namespace are all ready.
func (w *Waiter) WaitForPods(
	ctx context.Context,
	namespace string,
	selector string,
	timeout time.Duration,
	progress ProgressFunc,
) error {
	clientset, err := w.client()
	if err != nil {
		return err
	}

	return WaitForPodsReady(ctx, clientset, selector, namespace, w.interval, timeout, progress)
}

// DiagnosePods describes the matching pods that are not healthy, one per line.
// It returns an empty string when the clientset cannot be created.
func (w *Waiter) DiagnosePods(ctx context.Context, namespace, selector string) string {
	clientset, err := w.client()
	if err != nil {
		return ""
	}

	if namespace == "" {
		namespace = "default"
	}

	return k8s.DiagnosePodFailures(ctx, clientset, namespace, selector)
}

func (w *Waiter) client() (kubernetes.Interface, error) {
	w.once.Do(func() {
		w.clientset, w.err = w.factory()
		if w.err != nil {
			w.err = fmt.Errorf("failed to create kubernetes client: %w", w.err)
		}
	})

	return w.clientset, w.err
}
