// Package environment stands up and tears down the local 2048 demo environment.
//
// An Installer runs a fixed sequence of stages (tool check, kind cluster, image
// build and load, ingress controller, hosts entry, application manifests, readiness
// waits) and stops at the first failure without rolling anything back. An
// Uninstaller removes the cluster, the image and the hosts entry, skipping whatever
// is already gone, so running it repeatedly is safe.
//
// Both talk to the outside world only through the small interfaces in this package;
// DefaultFactory wires them to kind, the Docker engine, kubectl and the hosts file.
package environment
