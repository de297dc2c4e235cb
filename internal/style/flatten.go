package style

import "strings"

// Flatten collapses a possibly multi-line string into a single line:
// line breaks become spaces, runs of whitespace collapse to one space,
// and leading/trailing whitespace is trimmed. Flattening an already
// flat string returns it unchanged.
func Flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
