// Package clusterprovisioner defines the lifecycle contract for local Kubernetes clusters.
//
// The only implementation is kind (pkg/svc/provisioner/cluster/kind), which runs
// kind's cobra commands in-process against the local Docker engine.
package clusterprovisioner
