package compiler

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sanitize turns an arbitrary asset name into a valid source identifier.
// Accented letters are decomposed first so "Café" degrades to "Cafe"
// rather than "Caf_". Everything else outside [A-Za-z0-9] becomes '_',
// leading/trailing '_' runs are trimmed, and a digit-leading result gets a
// '_' prefix. An all-invalid name yields fallback unchanged; callers that
// need positional uniqueness embed the ordinal into the fallback
// ("Mesh_3") themselves.
func Sanitize(raw string, fallback string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		default:
			b.WriteRune('_')
		}
	}

	s := strings.Trim(b.String(), "_")
	if s == "" {
		return fallback
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}
