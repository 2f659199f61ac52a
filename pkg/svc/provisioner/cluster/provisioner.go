package clusterprovisioner

import (
	"context"

	kindprovisioner "github.com/kadirariklar/game-2048-for-k8s/pkg/svc/provisioner/cluster/kind"
)

// ClusterProvisioner defines methods for managing a local Kubernetes cluster.
// An empty name targets the cluster named in the provisioner's config.
type ClusterProvisioner interface {
	// Create creates the cluster.
	Create(ctx context.Context, name string) error

	// Delete deletes the cluster. Implementations return an error wrapping
	// ErrClusterNotFound when it does not exist.
	Delete(ctx context.Context, name string) error

	// LoadImage makes a locally built image available to the cluster's nodes.
	LoadImage(ctx context.Context, image, name string) error
}

// ErrClusterNotFound is returned by Delete when the cluster does not exist.
var ErrClusterNotFound = kindprovisioner.ErrClusterNotFound

var _ ClusterProvisioner = (*kindprovisioner.KindClusterProvisioner)(nil)
