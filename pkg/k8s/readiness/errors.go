package readiness

import "errors"

// ErrTimeoutExceeded is returned when the condition does not hold before the deadline.
var ErrTimeoutExceeded = errors.New("timeout exceeded")
