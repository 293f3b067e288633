package match

import (
	"unicode/utf8"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two
// strings over Unicode code points. The distance is the minimum number of
// single-character edits (insertions, deletions, or substitutions) required
// to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Ensure ra is the shorter string for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	// Initialize first row
	for i := range prev {
		prev[i] = i
	}

	// Fill in the rest of the matrix
	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// Two empty strings are identical (1.0); comparing an empty string against
// a non-empty one earns no partial credit (0.0). Otherwise the score is:
// 1 - (distance / max(len(a), len(b))), lengths counted in code points.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}

	if a == "" || b == "" {
		return 0.0
	}

	maxLen := max(runeLen(a), runeLen(b))

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}

// runeLen counts Unicode code points, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
