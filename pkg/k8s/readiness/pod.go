package readiness

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// ProgressFunc receives the ready and total pod counts after every check.
type ProgressFunc func(ready, total int)

// WaitForPodsReady polls until at least one pod matches selector in namespace and
// all matching pods have every container ready. An empty namespace means "default".
func WaitForPodsReady(
	ctx context.Context,
	clientset kubernetes.Interface,
	selector string,
	namespace string,
	interval time.Duration,
	deadline time.Duration,
	progress ProgressFunc,
) error {
	if namespace == "" {
		namespace = metav1.NamespaceDefault
	}

	return PollForReadiness(ctx, interval, deadline, func(ctx context.Context) (bool, error) {
		pods, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector})
		if err != nil {
			return false, nil //nolint:nilerr // keep polling
		}

		ready, total := PodCounts(pods.Items)

		if progress != nil {
			progress(ready, total)
		}

		return PodsReady(ready, total), nil
	})
}

// PodCounts returns how many pods have all containers ready, and how many pods there are.
// A pod without container statuses yet is not ready.
func PodCounts(pods []corev1.Pod) (int, int) {
	ready := 0

	for i := range pods {
		if allContainersReady(&pods[i]) {
			ready++
		}
	}

	return ready, len(pods)
}

// PodsReady reports whether the counts satisfy the readiness condition.
// Zero matched pods is never ready.
func PodsReady(ready, total int) bool {
	return total > 0 && ready == total
}

func allContainersReady(pod *corev1.Pod) bool {
	if len(pod.Status.ContainerStatuses) == 0 {
		return false
	}

	for _, status := range pod.Status.ContainerStatuses {
		if !status.Ready {
			return false
		}
	}

	return true
}
