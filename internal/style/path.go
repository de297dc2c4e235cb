package style

import (
	"strings"
	"unicode"
)

// ThumbDir is where derived thumbnail paths point. Kept as a literal
// "./"-relative prefix because the consuming application stores it verbatim.
const ThumbDir = "./Pictures/thumbs"

// Slug lowercases a style name and strips every rune that is not a letter
// or digit. "Damn Hip" becomes "damnhip"; "cyberpunk-neon" becomes
// "cyberpunkneon".
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ThumbPath derives the conventional thumbnail location for a style name.
func ThumbPath(name string) string {
	return ThumbDir + "/" + Slug(name) + ".png"
}
