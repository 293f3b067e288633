package match

import (
	"strings"
)

// punctuation lists the characters stripped alongside whitespace, covering
// both the full-width and half-width forms seen in recognized label text.
const punctuation = "：:，。、；;！!？?（）()【】[]"

// NormalizeText canonicalizes a string for comparison by removing spaces,
// newlines, tabs and common punctuation. Idempotent and total: any input,
// including the empty string, yields a valid result.
func NormalizeText(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isStripped(r) {
			continue
		}

		result.WriteRune(r)
	}

	return strings.TrimSpace(result.String())
}

// isStripped returns true if the rune is removed during normalization.
func isStripped(r rune) bool {
	if r == ' ' || r == '\n' || r == '\t' {
		return true
	}

	return strings.ContainsRune(punctuation, r)
}
