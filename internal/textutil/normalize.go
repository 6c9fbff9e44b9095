package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a string for matching: trimmed, lower-cased, with
// diacritic marks folded to their ASCII base letters. It is idempotent and
// total; any transform failure yields the empty string, which callers must
// treat as "unmatched", never as a wildcard.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return ""
	}
	return out
}

// NormalizeBookID canonicalizes a book identifier so lexical variants of the
// same book ("1 Corinthians", "1-corintios", "1_corinthians") compare equal
// within one language. Spaces and hyphens collapse to underscores.
func NormalizeBookID(s string) string {
	s = Normalize(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	lastSep := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if !lastSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			lastSep = true
		default:
			b.WriteRune(r)
			lastSep = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
