package readiness_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kadirariklar/game-2048-for-k8s/pkg/k8s/readiness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
)

func pod(namespace, name string, labels map[string]string, ready ...bool) *corev1.Pod {
	statuses := make([]corev1.ContainerStatus, 0, len(ready))
	for i, r := range ready {
		statuses = append(statuses, corev1.ContainerStatus{Name: string(rune('a' + i)), Ready: r})
	}

	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name, Labels: labels},
		Status:     corev1.PodStatus{ContainerStatuses: statuses},
	}
}

var appLabels = map[string]string{"app": "game-2048"}

type progressRecorder struct {
	mu    sync.Mutex
	calls [][2]int
}

func (p *progressRecorder) record(ready, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, [2]int{ready, total})
}

func (p *progressRecorder) last() [2]int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls[len(p.calls)-1]
}

func TestWaitForPodsReady_AllReady(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(
		pod("default", "game-1", appLabels, true),
		pod("default", "game-2", appLabels, true, true),
		pod("default", "other", map[string]string{"app": "other"}, false),
	)
	progress := &progressRecorder{}

	err := readiness.WaitForPodsReady(context.Background(), clientset, "app=game-2048", "",
		5*time.Millisecond, time.Second, progress.record)

	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 2}, progress.last())
}

func TestWaitForPodsReady_PartiallyReadyTimesOut(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(
		pod("default", "game-1", appLabels, true),
		pod("default", "game-2", appLabels, true),
		pod("default", "game-3", appLabels, true, false),
	)
	progress := &progressRecorder{}

	err := readiness.WaitForPodsReady(context.Background(), clientset, "app=game-2048", "default",
		5*time.Millisecond, 30*time.Millisecond, progress.record)

	require.ErrorIs(t, err, readiness.ErrTimeoutExceeded)
	assert.Equal(t, [2]int{2, 3}, progress.last())
}

func TestWaitForPodsReady_NoPodsNeverReady(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()

	err := readiness.WaitForPodsReady(context.Background(), clientset, "app=game-2048", "",
		5*time.Millisecond, 30*time.Millisecond, nil)

	require.ErrorIs(t, err, readiness.ErrTimeoutExceeded)
}

func TestWaitForPodsReady_RespectsNamespace(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(
		pod("ingress-nginx", "controller", map[string]string{"app.kubernetes.io/component": "controller"}, true),
	)

	err := readiness.WaitForPodsReady(context.Background(), clientset,
		"app.kubernetes.io/component=controller", "ingress-nginx", 5*time.Millisecond, time.Second, nil)
	require.NoError(t, err)

	err = readiness.WaitForPodsReady(context.Background(), clientset,
		"app.kubernetes.io/component=controller", "", 5*time.Millisecond, 30*time.Millisecond, nil)
	require.ErrorIs(t, err, readiness.ErrTimeoutExceeded)
}

func TestPodCounts(t *testing.T) {
	t.Parallel()

	pods := []corev1.Pod{
		*pod("default", "ready", nil, true, true),
		*pod("default", "half", nil, true, false),
		*pod("default", "pending", nil),
	}

	ready, total := readiness.PodCounts(pods)
	assert.Equal(t, 1, ready)
	assert.Equal(t, 3, total)
}

func TestPodsReady(t *testing.T) {
	t.Parallel()

	assert.True(t, readiness.PodsReady(1, 1))
	assert.True(t, readiness.PodsReady(3, 3))
	assert.False(t, readiness.PodsReady(2, 3))
	assert.False(t, readiness.PodsReady(0, 0))
}

func TestWaiter_CreatesClientsetOnce(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(
		node("cluster-local-control-plane", corev1.ConditionTrue),
		pod("default", "game-1", appLabels, true),
	)
	created := 0
	waiter := readiness.NewWaiter(func() (kubernetes.Interface, error) {
		created++

		return clientset, nil
	}, 5*time.Millisecond)

	require.NoError(t, waiter.WaitForNodes(context.Background(), time.Second))
	require.NoError(t, waiter.WaitForPods(context.Background(), "", "app=game-2048", time.Second, nil))
	assert.Equal(t, 1, created)
}

func TestWaiter_FactoryError(t *testing.T) {
	t.Parallel()

	waiter := readiness.NewWaiter(func() (kubernetes.Interface, error) {
		return nil, errCheckBroken
	}, 5*time.Millisecond)

	err := waiter.WaitForNodes(context.Background(), time.Second)
	require.ErrorIs(t, err, errCheckBroken)
	assert.Contains(t, err.Error(), "failed to create kubernetes client")
}

func TestWaiter_DiagnosePods(t *testing.T) {
	t.Parallel()

	stuck := pod("default", "game-1", appLabels, false)
	stuck.Status.Phase = corev1.PodPending
	stuck.Status.ContainerStatuses[0].Image = "game-2048-image"
	stuck.Status.ContainerStatuses[0].State.Waiting = &corev1.ContainerStateWaiting{Reason: "ImagePullBackOff"}

	waiter := readiness.NewWaiter(func() (kubernetes.Interface, error) {
		return fake.NewClientset(stuck), nil
	}, 5*time.Millisecond)

	got := waiter.DiagnosePods(context.Background(), "", "app=game-2048")
	assert.Equal(t, "game-1: ImagePullBackOff for game-2048-image", got)
}
