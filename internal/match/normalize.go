package match

import (
	"strings"
	"unicode"
)

// Normalize case-folds an identifier and strips separators, so that
// "service_name", "serviceName" and "Service-Name" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '$'
}
