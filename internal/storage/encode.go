package storage

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/dtstyler/dtstyler/internal/style"
)

// Encode renders the collection in the exact layout the consuming
// application reads: a two-space-indented JSON array with object keys in
// fixed order, " : " between key and value, ASCII-only string escapes,
// and no trailing newline. An empty collection encodes as "[]".
//
// The separator is written structurally per key, never patched into the
// output with string replacement, so values that themselves contain
// `": ` survive a save intact.
func Encode(styles []style.Style) []byte {
	if len(styles) == 0 {
		return []byte("[]")
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, s := range styles {
		b.WriteString("  {\n")
		writeField(&b, "name", s.Name, true)
		writeField(&b, "prompt", s.Prompt, true)
		writeField(&b, "negative_prompt", s.NegativePrompt, true)
		writeField(&b, "image_path", s.ImagePath, false)
		b.WriteString("  }")
		if i < len(styles)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')
	return []byte(b.String())
}

// writeField writes one `    "key" : "value"` line. Keys are fixed ASCII
// identifiers and need no escaping.
func writeField(b *strings.Builder, key, value string, comma bool) {
	b.WriteString(`    "`)
	b.WriteString(key)
	b.WriteString(`" : `)
	writeJSONString(b, value)
	if comma {
		b.WriteByte(',')
	}
	b.WriteByte('\n')
}

// writeJSONString writes a quoted JSON string with ASCII-only escapes:
// short escapes for quote, backslash, and common control characters,
// \u00xx for the remaining control characters, and \uxxxx (a surrogate
// pair above U+FFFF) for every rune outside 0x20..0x7E. HTML-sensitive
// characters like < > & are left alone.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				b.WriteRune(r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}
