// Package docker talks to the local Docker engine through its API.
package docker

import (
	"errors"
	"fmt"

	"github.com/docker/docker/client"
)

// ErrAPIClientNil is returned when a nil API client is supplied.
var ErrAPIClientNil = errors.New("apiClient cannot be nil")

// GetDockerClient creates a Docker client using environment configuration
// (DOCKER_HOST, DOCKER_TLS_VERIFY, DOCKER_CERT_PATH) with API version negotiation.
func GetDockerClient() (client.APIClient, error) {
	dockerClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return dockerClient, nil
}
