// Package client provides the Docker and Kubernetes clients used by the environment procedures.
//
//   - docker: engine connection plus image build and removal
//   - kubectl: in-process kubectl apply and get
package client
