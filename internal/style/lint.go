package style

import (
	"fmt"
	"strings"
)

// Lint inspects a loaded collection and returns advisory warnings:
// duplicate names, empty required fields, and prompts missing the
// substitution placeholder. Nothing here rejects a record.
func Lint(styles []Style) []string {
	var warnings []string
	seen := make(map[string]int)

	for i, s := range styles {
		pos := i + 1
		name := strings.TrimSpace(s.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("style #%d has no name", pos))
		} else if first, ok := seen[name]; ok {
			warnings = append(warnings, fmt.Sprintf("style #%d %q duplicates style #%d", pos, s.Name, first))
		} else {
			seen[name] = pos
		}

		if strings.TrimSpace(s.Prompt) == "" {
			warnings = append(warnings, fmt.Sprintf("style #%d %q has an empty prompt", pos, s.Name))
		} else if !s.HasPlaceholder() {
			warnings = append(warnings, fmt.Sprintf("style #%d %q is missing the %s placeholder", pos, s.Name, PlaceholderToken))
		}
	}

	return warnings
}
