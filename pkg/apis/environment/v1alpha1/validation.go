package v1alpha1

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrMissingField is returned when a required setting is empty.
	ErrMissingField = errors.New("required field is empty")
	// ErrInvalidDuration is returned when a readiness duration is not positive.
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Validate checks that every setting the procedures depend on is present.
func (e *Environment) Validate() error {
	required := map[string]string{
		"cluster.name":        e.Cluster.Name,
		"cluster.configPath":  e.Cluster.ConfigPath,
		"image.name":          e.Image.Name,
		"image.buildContext":  e.Image.BuildContext,
		"ingress.manifestURL": e.Ingress.ManifestURL,
		"ingress.selector":    e.Ingress.Selector,
		"app.manifestsDir":    e.App.ManifestsDir,
		"app.selector":        e.App.Selector,
		"hosts.hostname":      e.Hosts.Hostname,
		"hosts.address":       e.Hosts.Address,
		"hosts.file":          e.Hosts.File,
	}

	var errs []error

	for _, key := range slices.Sorted(maps.Keys(required)) {
		if required[key] == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, key))
		}
	}

	durations := []struct {
		key   string
		value int64
	}{
		{"readiness.interval", int64(e.Readiness.Interval)},
		{"readiness.nodeTimeout", int64(e.Readiness.NodeTimeout)},
		{"readiness.podTimeout", int64(e.Readiness.PodTimeout)},
	}

	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDuration, d.key))
		}
	}

	return errors.Join(errs...)
}
