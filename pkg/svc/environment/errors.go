package environment

import "fmt"

// Installer step names.
const (
	StepPreflight      = "preflight"
	StepCreateCluster  = "create-cluster"
	StepWaitNodes      = "wait-nodes"
	StepBuildImage     = "build-image"
	StepLoadImage      = "load-image"
	StepApplyIngress   = "apply-ingress"
	StepWaitIngress    = "wait-ingress"
	StepAddHostsEntry  = "add-hosts-entry"
	StepApplyManifests = "apply-manifests"
	StepWaitApp        = "wait-app"
	StepPrintState     = "print-state"
)

// Uninstaller step names.
const (
	StepDeleteCluster    = "delete-cluster"
	StepRemoveImage      = "remove-image"
	StepRemoveHostsEntry = "remove-hosts-entry"
)

// StepError reports which step of a procedure failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
