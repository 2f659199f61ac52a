package hosts

import "runtime"

// Platform identifies how the hosts file can be managed on the current OS.
type Platform int

const (
	// Unsupported platforms require the user to edit the hosts file manually.
	Unsupported Platform = iota
	// Linux edits /etc/hosts.
	Linux
	// Darwin edits /etc/hosts on macOS.
	Darwin
)

// DetectPlatform returns the Platform of the running binary.
func DetectPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor maps a GOOS value to a Platform.
func PlatformFor(goos string) Platform {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Unsupported
	}
}

// Supported reports whether the hosts file can be edited automatically.
func (p Platform) Supported() bool {
	return p == Linux || p == Darwin
}

func (p Platform) String() string {
	switch p {
	case Linux:
		return "Linux"
	case Darwin:
		return "Mac"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}
