package rtttl

import (
	"strings"
	"unicode"
)

// isBlank is unicode whitespace plus the ASCII file, group, record and unit
// separators (0x1c-0x1f), which ringtone text treats as blanks too.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// RemoveWhitespace drops every blank character from s.
func RemoveWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isBlank), "")
}
