package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize turns a raw fragment into a token usable inside a logical ID.
// Dashes are replaced first, then underscores, so "a-_b" becomes "ADashUnderscoreb".
func Normalize(fragment string) string {
	escaped := strings.ReplaceAll(fragment, "-", "Dash")
	escaped = strings.ReplaceAll(escaped, "_", "Underscore")

	return UpperFirst(escaped)
}

// UpperFirst upper-cases the first rune of s and leaves the rest untouched.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}

	return string(upper) + s[size:]
}
