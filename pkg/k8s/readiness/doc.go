// Package readiness waits for the kind cluster's nodes and pods to become ready.
//
// Polling is a bounded loop with a fixed interval: the condition is checked
// immediately and then after every interval until it holds or the deadline
// passes. There is no backoff.
//
//   - [PollForReadiness] is the generic loop.
//   - [WaitForNodesReady] succeeds when no node reports a non-Ready status.
//   - [WaitForPodsReady] succeeds when at least one pod matches the selector and
//     every matching pod has all containers ready.
//   - [Waiter] binds both to a lazily created clientset.
package readiness
