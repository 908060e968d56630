// Package fold strips diacritics so filename and label keywords match
// regardless of accents ("posición" vs "posicion").
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCII returns s with combining marks removed.
func ASCII(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}

// Lower returns s lowercased with combining marks removed. Keyword
// matching throughout the locator goes through this.
func Lower(s string) string {
	return strings.ToLower(ASCII(s))
}
