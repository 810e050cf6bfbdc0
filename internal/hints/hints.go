// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentDir returns a hint for a missing content directory.
func ForContentDir() string {
	return format("run from the site root or set --content")
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutput returns a hint when the output directory cannot be cleared.
func ForUnsafeOutput() string {
	return format("--output is cleared on every build; point it at a dedicated directory such as public")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .css file")
}

// ForTemplatePlaceholder returns a hint for templates missing a placeholder.
func ForTemplatePlaceholder() string {
	return format("the template must contain both {{ Title }} and {{ Content }}")
}

// ForTitleNotFound returns a hint for pages without an H1 heading.
func ForTitleNotFound() string {
	return format(`start each page with a "# Title" line`)
}

// ForMalformedPage returns a hint for pages that produce an empty element.
func ForMalformedPage() string {
	return formatHints([]string{
		"look for empty styled runs such as **** or ``",
		"use --keep-going to build the remaining pages",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
