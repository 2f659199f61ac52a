// Package svc provides the service layer behind the install and uninstall commands.
//
// Subpackages:
//   - environment: the install and uninstall procedures and their step wiring
//   - hosts: hosts file inspection and privileged edits
//   - preflight: required tool checks
//   - provisioner: kind cluster lifecycle
package svc
