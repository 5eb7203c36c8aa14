// Package palindrome checks whether text reads the same in both directions.
package palindrome

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsBasic reports whether s equals its rune-wise reverse. No normalization
// is applied, so case, spacing and accents all count.
func IsBasic(s string) bool {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		if r[i] != r[j] {
			return false
		}
	}
	return true
}

// Is reports whether s is a palindrome once case, accents, spacing and
// punctuation are ignored. Text with no letters or digits is not a
// palindrome.
func Is(s string) bool {
	clean := Normalize(s)
	if clean == "" {
		return false
	}
	return IsBasic(clean)
}

// Normalize lower-cases s, strips combining marks and drops everything
// that is not a letter or digit.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
