// Package k8s builds Kubernetes clients for the kind cluster and diagnoses unhealthy pods.
//
// Readiness polling lives in the [readiness] sub-package.
package k8s
