package readiness

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// WaitForNodesReady polls until no node reports a non-Ready status.
// An empty node list counts as ready.
func WaitForNodesReady(
	ctx context.Context,
	clientset kubernetes.Interface,
	interval time.Duration,
	deadline time.Duration,
) error {
	return PollForReadiness(ctx, interval, deadline, func(ctx context.Context) (bool, error) {
		nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
		if err != nil {
			// the API server may still be starting
			return false, nil //nolint:nilerr // keep polling
		}

		return len(NotReadyNodes(nodes.Items)) == 0, nil
	})
}

// NotReadyNodes returns the names of the nodes whose Ready condition is not True.
// A node without a Ready condition is not ready.
func NotReadyNodes(nodes []corev1.Node) []string {
	var notReady []string

	for i := range nodes {
		if !isNodeReady(&nodes[i]) {
			notReady = append(notReady, nodes[i].Name)
		}
	}

	return notReady
}

func isNodeReady(node *corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}

	return false
}
