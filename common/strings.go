//revive:disable:var-naming
package common

//revive:enable:var-naming

import (
	"strings"
	"unicode"
)

// IsEmptyStr checks if a string contains only whitespace characters.
func IsEmptyStr(str string) bool {
	for _, c := range str {
		if !unicode.IsSpace(c) {
			return false
		}
	}

	return true
}

// TrimMarker removes every leading marker and space from line, then trims
// surrounding whitespace. "## Foo" and "# # Foo" both become "Foo".
func TrimMarker(line string, marker rune) string {
	return strings.TrimSpace(strings.TrimLeftFunc(line, func(r rune) bool {
		return r == marker || r == ' '
	}))
}

// JoinNonBlank joins the fragments that aren't whitespace-only with newlines.
func JoinNonBlank(fragments []string) string {
	var sb strings.Builder

	for _, f := range fragments {
		if IsEmptyStr(f) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f)
	}

	return sb.String()
}

// FirstLine returns s up to the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
