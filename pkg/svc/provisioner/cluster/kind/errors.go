package kindprovisioner

import "errors"

// ErrClusterNotFound is returned when deleting a cluster that kind does not list.
var ErrClusterNotFound = errors.New("cluster not found")
