package k8s

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// DiagnosePodFailures lists the pods matching selector in namespace and returns one
// line per pod that is not running with all containers ready. It returns an empty
// string when every matching pod is healthy or none exist.
func DiagnosePodFailures(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	selector string,
) string {
	pods, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return fmt.Sprintf("failed to list pods in %s: %v", namespace, err)
	}

	return strings.Join(collectPodFailures(pods.Items), "\n")
}

// collectPodFailures returns a line per unhealthy pod.
func collectPodFailures(pods []corev1.Pod) []string {
	var failures []string

	for i := range pods {
		pod := &pods[i]
		if isPodHealthy(pod) {
			continue
		}

		failures = append(failures, describePodFailure(pod))
	}

	return failures
}

// isPodHealthy reports whether a pod is Running with every container ready, or Succeeded.
func isPodHealthy(pod *corev1.Pod) bool {
	switch pod.Status.Phase {
	case corev1.PodRunning:
		for _, container := range pod.Status.ContainerStatuses {
			if !container.Ready {
				return false
			}
		}

		return true
	case corev1.PodSucceeded:
		return true
	case corev1.PodPending, corev1.PodFailed, corev1.PodUnknown:
		return false
	}

	return false
}

// describePodFailure explains in one line why a pod is unhealthy. An image that was
// never loaded into the kind node shows up here as ErrImagePull.
func describePodFailure(pod *corev1.Pod) string {
	// ImagePullBackOff and CrashLoopBackOff surface as waiting reasons.
	for _, container := range pod.Status.ContainerStatuses {
		if container.State.Waiting != nil && container.State.Waiting.Reason != "" {
			return fmt.Sprintf(
				"%s: %s for %s",
				pod.Name, container.State.Waiting.Reason, container.Image,
			)
		}

		if container.State.Terminated != nil && container.State.Terminated.ExitCode != 0 {
			return fmt.Sprintf(
				"%s: terminated with exit code %d (%s)",
				pod.Name, container.State.Terminated.ExitCode, container.State.Terminated.Reason,
			)
		}
	}

	for _, container := range pod.Status.InitContainerStatuses {
		if container.State.Waiting != nil && container.State.Waiting.Reason != "" {
			return fmt.Sprintf(
				"%s: init container %s: %s for %s",
				pod.Name, container.Name, container.State.Waiting.Reason, container.Image,
			)
		}
	}

	if pod.Status.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", pod.Name, pod.Status.Phase, pod.Status.Reason)
	}

	return fmt.Sprintf("%s: %s", pod.Name, pod.Status.Phase)
}
