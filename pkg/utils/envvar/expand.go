// Package envvar expands environment variable placeholders in configuration values.
package envvar

import (
	"os"
	"regexp"
)

// pattern matches ${NAME} and ${NAME:-fallback}.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Expand replaces ${NAME} placeholders with the value of the environment variable NAME.
// ${NAME:-fallback} yields fallback when NAME is unset or empty. An unset variable
// without fallback expands to the empty string.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		resolved := os.Getenv(groups[1])
		if resolved == "" {
			return groups[2]
		}

		return resolved
	})
}

// ExpandAll expands every string pointed to by targets in place.
func ExpandAll(targets ...*string) {
	for _, target := range targets {
		if target != nil {
			*target = Expand(*target)
		}
	}
}
